package form

import "github.com/bmt-tools/evidence-author/internal/model"

// Store owns the current record and notifies subscribers after every
// applied command. It performs no validation; soft advisories are a
// derived view (model.EvidenceRequest.Advisories) computed by readers.
//
// The store is single-writer by design: the session event loop is the
// only caller of Dispatch.
type Store struct {
	record      model.EvidenceRequest
	subscribers []func(model.EvidenceRequest)
}

// NewStore creates a store seeded with the given record.
func NewStore(initial model.EvidenceRequest) *Store {
	return &Store{record: initial.Clone()}
}

// Record returns a copy of the current record.
func (s *Store) Record() model.EvidenceRequest {
	return s.record.Clone()
}

// Dispatch applies a command and notifies subscribers with the new state.
func (s *Store) Dispatch(cmd Command) model.EvidenceRequest {
	s.record = Apply(s.record, cmd)
	next := s.record.Clone()
	for _, fn := range s.subscribers {
		fn(next)
	}
	return next
}

// Subscribe registers a callback invoked after every dispatch.
func (s *Store) Subscribe(fn func(model.EvidenceRequest)) {
	s.subscribers = append(s.subscribers, fn)
}
