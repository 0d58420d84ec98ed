// Package audit fans moderation decisions out to the configured sinks:
// the logger, the MQTT broker and the live WebSocket feed. A failing sink
// never affects the decision pipeline.
package audit

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/google/uuid"
)

// Record is one audited engine decision or sanction.
type Record struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	Timestamp time.Time              `json:"timestamp"`
	Fields    map[string]interface{} `json:"fields"`
}

// Sink receives audit records. Write must not block for long; slow
// transports buffer or drop on their side.
type Sink interface {
	Write(rec Record)
}

// Dispatcher implements the engine's AuditSink and fans records out.
type Dispatcher struct {
	mu    sync.RWMutex
	sinks []Sink
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a sink.
func (d *Dispatcher) Register(s Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, s)
}

// Publish builds a record and hands it to every sink. A panicking sink is
// recovered and logged; the remaining sinks still receive the record.
func (d *Dispatcher) Publish(event string, fields map[string]interface{}) {
	rec := Record{
		ID:        uuid.New().String(),
		Event:     event,
		Timestamp: time.Now(),
		Fields:    fields,
	}

	d.mu.RLock()
	sinks := make([]Sink, len(d.sinks))
	copy(sinks, d.sinks)
	d.mu.RUnlock()

	for _, s := range sinks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(fmt.Sprintf("Sink de auditoría falló: %v", r), "Audit")
				}
			}()
			s.Write(rec)
		}()
	}
}

// LogSink writes audit records to the bot logger.
type LogSink struct{}

// Write logs the record with the Audit prefix.
func (LogSink) Write(rec Record) {
	logger.Info(fmt.Sprintf("%s %v", rec.Event, rec.Fields), "Audit")
}

// MQTTPublisher is the part of the MQTT client the audit sink needs.
type MQTTPublisher interface {
	IsConnected() bool
	Publish(topic string, payload interface{}) error
}

// MQTTSink publishes records to sentinel/audit/<event>.
type MQTTSink struct {
	Pub MQTTPublisher
}

// Write publishes the record; a disconnected broker drops it silently.
func (s MQTTSink) Write(rec Record) {
	if s.Pub == nil || !s.Pub.IsConnected() {
		return
	}
	if err := s.Pub.Publish("sentinel/audit/"+rec.Event, rec); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar auditoría en MQTT: %v", err), "Audit")
	}
}
