package events

import (
	"time"
)

// Event types recorded over the lifetime of one BOM generation run.
const (
	GenerationStartedEvent   = "bom.generation.started"
	SelectionExpandedEvent   = "bom.selection.expanded"
	SelectionUnresolvedEvent = "bom.selection.unresolved"
	GenerationCompletedEvent = "bom.generation.completed"
)

// Event is a single entry in a run's audit trail. Entries within a
// stream are versioned in append order starting at 1.
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// Store collects events keyed by stream. A BOM run uses its run id as
// the stream id.
type Store interface {
	Append(streamID string, event Event) error
	Read(streamID string) ([]Event, error)
	ReadAll() ([]Event, error)
}

type BaseEvent struct {
	EventType    string
	Stream       string
	EventData    interface{}
	EventTime    time.Time
	EventVersion int
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) StreamID() string {
	return e.Stream
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Timestamp() time.Time {
	return e.EventTime
}

func (e BaseEvent) Version() int {
	return e.EventVersion
}

func NewEvent(eventType, streamID string, data interface{}) Event {
	return BaseEvent{
		EventType: eventType,
		Stream:    streamID,
		EventData: data,
		EventTime: time.Now(),
	}
}
