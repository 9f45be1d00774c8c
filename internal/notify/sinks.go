package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// LogSink writes notifications to the standard logger.
type LogSink struct{}

func (LogSink) Send(n Notification) error {
	log.Printf("[notify] %s: %s | %s (correlation_id=%s)", n.Variant, n.Title, n.Description, n.CorrelationID)
	return nil
}

// Publisher is the slice of a message broker client the AMQP sink needs.
type Publisher interface {
	Publish(routingKey string, body []byte, correlationID string) error
}

// BrokerSink publishes each notification as JSON with routing key
// "notification.<variant>".
type BrokerSink struct {
	pub Publisher
}

func NewBrokerSink(pub Publisher) *BrokerSink {
	return &BrokerSink{pub: pub}
}

func (s *BrokerSink) Send(n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	return s.pub.Publish(RoutingKey(n.Variant), body, n.CorrelationID)
}

func RoutingKey(v Variant) string {
	return "notification." + string(v)
}

// History keeps the most recent notifications in memory, oldest first, so
// clients that missed a toast can fetch it again.
type History struct {
	mu   sync.Mutex
	max  int
	list []Notification
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = queueSize
	}
	return &History{max: max}
}

func (h *History) Send(n Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.list = append(h.list, n)
	if over := len(h.list) - h.max; over > 0 {
		h.list = append(h.list[:0:0], h.list[over:]...)
	}
	return nil
}

// Recent returns a copy of the retained notifications.
func (h *History) Recent() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Notification, len(h.list))
	copy(out, h.list)
	return out
}

var (
	_ Sink = LogSink{}
	_ Sink = (*BrokerSink)(nil)
	_ Sink = (*History)(nil)
)
