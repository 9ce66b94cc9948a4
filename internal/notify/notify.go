// Package notify ships one operational log line per reconciliation to the
// team's alert webhook. Events flow through a buffered channel drained by a
// background worker so a slow webhook never blocks a player request.
package notify

import "context"

// Level colors the rendered log line.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelFailure Level = "failure"
)

// Event is one operational log line.
type Event struct {
	Level   Level
	Message string
}

// Sink delivers events somewhere out of process.
type Sink interface {
	Send(ctx context.Context, ev Event) error
}

// Publisher hands events to the worker without blocking the request path.
// A full inbox drops the event; the structured log still has the line.
type Publisher struct {
	inbox chan Event
}

func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Publisher{inbox: make(chan Event, buffer)}
}

// Emit enqueues an event, reporting whether it was accepted.
func (p *Publisher) Emit(ev Event) bool {
	select {
	case p.inbox <- ev:
		return true
	default:
		return false
	}
}

// Inbox exposes the channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
