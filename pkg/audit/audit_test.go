package audit

import (
	"sync"
	"testing"
)

// captureSink records every record it receives.
type captureSink struct {
	mu   sync.Mutex
	recs []Record
}

func (c *captureSink) Write(rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
}

// panicSink always panics on write.
type panicSink struct{}

func (panicSink) Write(Record) {
	panic("sink roto")
}

func TestDispatcherFansOut(t *testing.T) {
	d := NewDispatcher()
	a := &captureSink{}
	b := &captureSink{}
	d.Register(a)
	d.Register(b)

	d.Publish("message.filtered", map[string]interface{}{"word": "spam"})

	for name, sink := range map[string]*captureSink{"a": a, "b": b} {
		if len(sink.recs) != 1 {
			t.Fatalf("sink %s: records = %d, want 1", name, len(sink.recs))
		}
		rec := sink.recs[0]
		if rec.Event != "message.filtered" {
			t.Errorf("sink %s: Event = %q, want %q", name, rec.Event, "message.filtered")
		}
		if rec.ID == "" {
			t.Errorf("sink %s: ID is empty", name)
		}
		if rec.Fields["word"] != "spam" {
			t.Errorf("sink %s: Fields = %v", name, rec.Fields)
		}
	}
}

func TestDispatcherSurvivesPanickingSink(t *testing.T) {
	d := NewDispatcher()
	d.Register(panicSink{})
	after := &captureSink{}
	d.Register(after)

	d.Publish("member.warned", map[string]interface{}{"memberId": "u1"})

	if len(after.recs) != 1 {
		t.Errorf("sink after the panicking one got %d records, want 1", len(after.recs))
	}
}

func TestDispatcherNoSinks(t *testing.T) {
	d := NewDispatcher()
	// No debe explotar sin sinks registrados
	d.Publish("member.warned", map[string]interface{}{})
}
