// Package settings holds the transient preview-pane view state: which
// of the two page renderings is active and which dates the simulated
// page should assume.
package settings

import (
	"time"

	"github.com/bmt-tools/evidence-author/internal/model"
)

// Partial is a merge-update for PreviewSettings. Nil fields are left
// unchanged.
type Partial struct {
	ViewMode        *model.ViewMode
	SuspenseDate    *string
	RequestedDate   *string
	SimulatePastDue *bool
}

// Store owns the preview settings for one session. Defaults are
// recomputed from the injected clock on every Reset so each session
// sees a rolling 30-day respond-by window.
type Store struct {
	now      func() time.Time
	settings model.PreviewSettings
}

// NewStore creates a store with defaults derived from now().
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:      now,
		settings: model.DefaultPreviewSettings(now()),
	}
}

// Settings returns the current settings.
func (s *Store) Settings() model.PreviewSettings {
	return s.settings
}

// Update merges the non-nil fields of p into the current settings and
// returns the result.
func (s *Store) Update(p Partial) model.PreviewSettings {
	if p.ViewMode != nil {
		s.settings.ViewMode = *p.ViewMode
	}
	if p.SuspenseDate != nil {
		s.settings.SuspenseDate = *p.SuspenseDate
	}
	if p.RequestedDate != nil {
		s.settings.RequestedDate = *p.RequestedDate
	}
	if p.SimulatePastDue != nil {
		s.settings.SimulatePastDue = *p.SimulatePastDue
	}
	return s.settings
}

// Reset restores the defaults, recomputed from the current clock.
func (s *Store) Reset() model.PreviewSettings {
	s.settings = model.DefaultPreviewSettings(s.now())
	return s.settings
}
