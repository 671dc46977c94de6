package broker

import (
	"log"

	"github.com/nats-io/nats.go"
)

// Consumer fans messages from a set of subjects into a single channel.
type Consumer struct {
	conn     *nats.Conn
	subs     []*nats.Subscription
	messages chan *nats.Msg
}

func NewConsumer(url string, subjects []string) (*Consumer, error) {
	conn, err := nats.Connect(url, nats.Name("scrawl-consumer"))
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		conn:     conn,
		messages: make(chan *nats.Msg, 256),
	}

	for _, subject := range subjects {
		sub, err := conn.ChanSubscribe(subject, c.messages)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.subs = append(c.subs, sub)
	}

	return c, nil
}

func (c *Consumer) Messages() <-chan *nats.Msg {
	return c.messages
}

func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Failed to unsubscribe consumer: %v", err)
		}
	}
	c.conn.Close()
}
