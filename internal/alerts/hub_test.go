package alerts

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeConn struct {
	writes []Envelope
	fail   bool
}

func (f *fakeConn) WriteJSON(v any) error {
	if f.fail {
		return errors.New("broken pipe")
	}
	f.writes = append(f.writes, v.(Envelope))
	return nil
}

func TestHub_RegisterSendsAck(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}

	hub.Register(conn)

	if len(conn.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(conn.writes))
	}
	if conn.writes[0].Type != "connected" {
		t.Fatalf("expected connected ack, got %q", conn.writes[0].Type)
	}
	if hub.Count() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.Count())
	}
}

func TestHub_PublishFansOut(t *testing.T) {
	hub := NewHub()
	conns := []*fakeConn{{}, {}, {}}
	for _, c := range conns {
		hub.Register(c)
	}

	hub.Publish(`{"id":7,"warning_level":9}`)

	for i, c := range conns {
		if len(c.writes) != 2 {
			t.Fatalf("subscriber %d: expected ack + alert, got %d writes", i, len(c.writes))
		}
		alert := c.writes[1]
		if alert.Type != "incident_alert" {
			t.Fatalf("subscriber %d: expected incident_alert, got %q", i, alert.Type)
		}
		var payload struct {
			ID           int64 `json:"id"`
			WarningLevel int32 `json:"warning_level"`
		}
		if err := json.Unmarshal(alert.Data, &payload); err != nil {
			t.Fatalf("subscriber %d: invalid data: %v", i, err)
		}
		if payload.ID != 7 || payload.WarningLevel != 9 {
			t.Fatalf("subscriber %d: unexpected payload %+v", i, payload)
		}
	}
}

func TestHub_UnregisteredGetsNothing(t *testing.T) {
	hub := NewHub()
	stay := &fakeConn{}
	leave := &fakeConn{}
	hub.Register(stay)
	hub.Register(leave)

	hub.Unregister(leave)
	hub.Publish(`{"id":1}`)

	if len(leave.writes) != 1 {
		t.Fatalf("unregistered subscriber received %d writes past the ack", len(leave.writes)-1)
	}
	if len(stay.writes) != 2 {
		t.Fatalf("remaining subscriber expected ack + alert, got %d writes", len(stay.writes))
	}
}

func TestHub_UnregisterIdempotent(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn)

	hub.Unregister(conn)
	hub.Unregister(conn)

	if hub.Count() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.Count())
	}
}

func TestHub_RawTextFallback(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn)

	hub.Publish("not json at all {")

	if len(conn.writes) != 2 {
		t.Fatalf("expected ack + alert, got %d writes", len(conn.writes))
	}
	var raw string
	if err := json.Unmarshal(conn.writes[1].Data, &raw); err != nil {
		t.Fatalf("expected quoted raw string, got %s", conn.writes[1].Data)
	}
	if raw != "not json at all {" {
		t.Fatalf("raw payload mangled: %q", raw)
	}
}

// serialConn counts writes that enter while another is still in flight.
// Gorilla connections tolerate only one writer at a time, so any overlap
// is a defect.
type serialConn struct {
	inFlight atomic.Int32
	overlaps atomic.Int32
}

func (s *serialConn) WriteJSON(v any) error {
	if s.inFlight.Add(1) > 1 {
		s.overlaps.Add(1)
	}
	time.Sleep(100 * time.Microsecond)
	s.inFlight.Add(-1)
	return nil
}

func TestHub_SerializesWritesPerConnection(t *testing.T) {
	hub := NewHub()
	conn := &serialConn{}

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 25; j++ {
				hub.Publish(`{"id":1,"warning_level":8}`)
			}
		}()
	}
	// Registration races the broadcasts; its ack must still land one
	// write at a time with them.
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		hub.Register(conn)
	}()

	close(start)
	wg.Wait()

	if n := conn.overlaps.Load(); n != 0 {
		t.Fatalf("observed %d overlapping writes to one connection", n)
	}
}

func TestHub_DeadSubscriberDropped(t *testing.T) {
	hub := NewHub()
	alive := &fakeConn{}
	dead := &fakeConn{}
	hub.Register(alive)
	hub.Register(dead)
	dead.fail = true

	hub.Publish(`{"id":2}`)

	if hub.Count() != 1 {
		t.Fatalf("expected dead subscriber to be dropped, count %d", hub.Count())
	}
	if len(alive.writes) != 2 {
		t.Fatalf("live subscriber expected ack + alert, got %d writes", len(alive.writes))
	}

	// Publishing again must not touch the dropped connection.
	hub.Publish(`{"id":3}`)
	if len(alive.writes) != 3 {
		t.Fatalf("live subscriber expected 3 writes, got %d", len(alive.writes))
	}
}
