package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0.000"},
		{7, "0.007"},
		{5000, "5.000"},
		{59999, "59.999"},
		{60000, "1:00.000"},
		{65000, "1:05.000"},
		{61001, "1:01.001"},
		{3599999, "59:59.999"},
		{3600000, "60:00.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.ms), "%dms", tt.ms)
	}
}

func TestGradeIcon(t *testing.T) {
	assert.Equal(t, gradeIcons[5], gradeIcon(5))
	assert.Equal(t, gradeIcons[1], gradeIcon(1))

	// Off-scale grades fall back to the lowest grade.
	assert.Equal(t, gradeIcons[1], gradeIcon(0))
	assert.Equal(t, gradeIcons[1], gradeIcon(9))
}
