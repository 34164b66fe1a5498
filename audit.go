package goACL

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Audit event types. One event is emitted per effective mutation; no-op
// grants and revokes stay silent.
const (
	EventRoleGranted     = "role_granted"
	EventRoleRevoked     = "role_revoked"
	EventAdminAdded      = "admin_added"
	EventAdminRevoked    = "admin_revoked"
	EventSuperAdminAdded = "super_admin_added"
)

// AclEvent records one effective membership mutation.
type AclEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	Role      string    `json:"role,omitempty"`
	Account   string    `json:"account"`
	Caller    string    `json:"caller,omitempty"`
}

// AuditSink receives audit events from the engine's dispatcher. Emit must
// be safe for concurrent use and should return promptly; slow sinks back up
// the dispatcher buffer.
type AuditSink interface {
	Emit(ctx context.Context, event AclEvent)
}

// NoOpSink discards all events.
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, AclEvent) {}

// ChannelSink forwards events to a channel for in-process consumers.
type ChannelSink struct {
	events chan AclEvent
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan AclEvent, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, event AclEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Events() <-chan AclEvent {
	return s.events
}

// JSONWriterSink writes one JSON object per line to the wrapped writer.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(_ context.Context, event AclEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
