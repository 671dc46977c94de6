package broker

import (
	"errors"
	"log"

	"github.com/nats-io/nats.go"
)

var producer *nats.Conn

var ErrProducerNotInitialized = errors.New("broker producer is not initialized")

func InitProducer(url string) error {
	conn, err := nats.Connect(url, nats.Name("scrawl-producer"))
	if err != nil {
		return err
	}
	producer = conn
	log.Println("Broker producer initialized")
	return nil
}

func PublishMessage(subject string, value []byte) error {
	if producer == nil {
		return ErrProducerNotInitialized
	}
	return producer.Publish(subject, value)
}

func CloseProducer() {
	if producer != nil {
		if err := producer.Drain(); err != nil {
			log.Printf("Failed to drain broker producer: %v", err)
		}
		producer = nil
	}
}
