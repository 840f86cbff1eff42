// Package websocket carries hub notifications to browsers over gorilla/websocket.
package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain/event"

	"github.com/gorilla/websocket"
)

// Frame is what travels on the socket, in both directions.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Sink is one websocket connection seen from the hub.
// Frames are queued and written by a single goroutine, which keeps them in submission order.
type Sink struct {
	log          *slog.Logger
	conn         *websocket.Conn
	out          chan Frame
	done         chan struct{}
	closeOnce    sync.Once
	writeTimeout time.Duration
}

var _ contract.EventSink = (*Sink)(nil)

func NewSink(log *slog.Logger, conn *websocket.Conn, bufferSize int, writeTimeout time.Duration) *Sink {
	return &Sink{
		log:          log,
		conn:         conn,
		out:          make(chan Frame, bufferSize),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
	}
}

// Consume queues the notification. It waits for room in the queue until ctx is done.
// A closed connection silently drops it.
func (s *Sink) Consume(ctx context.Context, n event.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	frame := Frame{Type: n.Type(), Payload: payload}

	select {
	case <-s.done:
		s.log.Debug("Connection closed, notification dropped", "type", n.Type())
		return nil
	default:
	}

	select {
	case s.out <- frame:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WritePump is the only writer of the connection. It returns when the sink is
// closed or a write fails.
func (s *Sink) WritePump() {
	defer s.Close()
	for {
		select {
		case frame := <-s.out:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := s.conn.WriteJSON(frame); err != nil {
				s.log.Debug("Websocket write failed", "error", err)
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}
