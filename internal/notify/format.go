package notify

import "fmt"

// FormatTime renders elapsed milliseconds as "M:SS.mmm", dropping the minute
// part entirely when under one minute ("SS.mmm").
func FormatTime(ms int64) string {
	minutes := ms / 60000
	rest := ms % 60000
	seconds := rest / 1000
	millis := rest % 1000

	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
	}
	return fmt.Sprintf("%d.%03d", seconds, millis)
}
