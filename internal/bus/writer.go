package bus

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeDeadline     = 5 * time.Second
	pingInterval      = 30 * time.Second
	pongDeadline      = 60 * time.Second
	messageBufferSize = 16
)

// subscriberWriter owns all writes to one subscriber connection. Messages
// are queued on a buffered channel; a full buffer marks the subscriber as
// slow and the hub evicts it.
type subscriberWriter struct {
	connection  *websocket.Conn
	sendChannel chan []byte
	doneChannel chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

func newSubscriberWriter(connection *websocket.Conn) *subscriberWriter {
	sw := &subscriberWriter{
		connection:  connection,
		sendChannel: make(chan []byte, messageBufferSize),
		doneChannel: make(chan struct{}),
	}
	sw.configurePongHandler()
	sw.wg.Add(1)
	go sw.run()
	return sw
}

func (sw *subscriberWriter) run() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer sw.wg.Done()

	for {
		select {
		case msg, ok := <-sw.sendChannel:
			if !ok {
				return
			}
			sw.updateWriteDeadline()
			if err := sw.connection.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			sw.updateWriteDeadline()
			if err := sw.connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sw.doneChannel:
			return
		}
	}
}

func (sw *subscriberWriter) stop() {
	sw.stopOnce.Do(func() {
		close(sw.doneChannel)
		_ = sw.connection.Close()
	})
	sw.wg.Wait()
}

func (sw *subscriberWriter) configurePongHandler() {
	sw.updateReadDeadline()
	sw.connection.SetPongHandler(func(string) error {
		sw.updateReadDeadline()
		return nil
	})
}

func (sw *subscriberWriter) updateWriteDeadline() {
	_ = sw.connection.SetWriteDeadline(time.Now().Add(writeDeadline))
}

func (sw *subscriberWriter) updateReadDeadline() {
	_ = sw.connection.SetReadDeadline(time.Now().Add(pongDeadline))
}
