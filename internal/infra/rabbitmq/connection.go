package rabbitmq

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const retryDelay = 2 * time.Second

type Connection struct {
	URL  string
	Conn *amqp.Connection
}

// Connect dials the broker, retrying up to attempts times.
func Connect(url string, attempts int) (*Connection, error) {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(url)
		if err == nil {
			log.Println("rabbitmq: connected")
			return &Connection{URL: url, Conn: conn}, nil
		}
		log.Printf("rabbitmq: connect failed: %v (attempt %d/%d)", err, i+1, attempts)
		if i < attempts-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("rabbitmq: no connection after %d attempts: %w", attempts, err)
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	return c.Conn.Channel()
}

func (c *Connection) Close() error {
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}
