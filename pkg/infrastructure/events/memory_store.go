package events

import (
	"sync"
)

// InMemoryStore keeps run audit trails in process memory. Streams are
// append-only and reads return copies.
type InMemoryStore struct {
	streams   map[string][]Event
	allEvents []Event
	mutex     sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:   make(map[string][]Event),
		allEvents: make([]Event, 0),
	}
}

func (s *InMemoryStore) Append(streamID string, event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.allEvents = append(s.allEvents, versioned)
	return nil
}

func (s *InMemoryStore) Read(streamID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}

	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

func (s *InMemoryStore) ReadAll() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]Event, len(s.allEvents))
	copy(result, s.allEvents)
	return result, nil
}
