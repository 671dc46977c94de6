package services

import (
	"encoding/json"
	"log"
	"time"

	"scrawl-notes/scrawl/broker"
	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"
)

type EventDispatcherInterface interface {
	Start()
	Stop()
}

// EventDispatcher polls the outbox for undispatched events and publishes them
// to the broker on the subject named by the event itself.
type EventDispatcher struct {
	db        *database.Database
	isRunning bool
	ticker    *time.Ticker
}

func NewEventDispatcher(db *database.Database) *EventDispatcher {
	return &EventDispatcher{
		db:     db,
		ticker: time.NewTicker(1 * time.Second),
	}
}

func (s *EventDispatcher) Start() {
	if s.isRunning {
		return
	}
	s.isRunning = true
	go s.processPendingEvents()
}

func (s *EventDispatcher) Stop() {
	if !s.isRunning {
		return
	}
	s.isRunning = false
	s.ticker.Stop()
}

func (s *EventDispatcher) processPendingEvents() {
	for range s.ticker.C {
		if !s.isRunning {
			return
		}

		var events []models.Event
		if err := s.db.DB.Where("dispatched = ?", false).Find(&events).Error; err != nil {
			log.Printf("Error fetching events: %v", err)
			continue
		}

		for _, event := range events {
			if err := s.dispatchEvent(event); err != nil {
				log.Printf("Error dispatching event %s: %v", event.ID, err)
				continue
			}
		}
	}
}

func (s *EventDispatcher) dispatchEvent(event models.Event) error {
	var dataMap map[string]interface{}
	if err := json.Unmarshal(event.Data, &dataMap); err != nil {
		log.Printf("Warning: Could not unmarshal event data: %v", err)
		dataMap = make(map[string]interface{})
	}

	payload := map[string]interface{}{
		"event_id":  event.ID.String(),
		"timestamp": event.Timestamp,
		"type":      event.Event,
		"entity":    event.Entity,
		"user_id":   event.ActorID.String(),
		"data":      dataMap,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := broker.PublishMessage(event.Event, payloadBytes); err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.DB.Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{"dispatched": true, "dispatched_at": now}).Error
}

var EventDispatcherInstance EventDispatcherInterface
