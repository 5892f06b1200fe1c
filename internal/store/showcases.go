package store

import (
	"fmt"

	"github.com/meanval/meanval/internal/domain"
)

// Showcases returns the collection in insertion order.
func (s *Store) Showcases() []domain.Showcase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Showcase, len(s.snap.Showcases))
	copy(out, s.snap.Showcases)
	return out
}

func (s *Store) Showcase(id string) (domain.Showcase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findShowcase(id); i >= 0 {
		return s.snap.Showcases[i], true
	}
	return domain.Showcase{}, false
}

// ShowcaseByProject returns the showcase attached to a project, if any.
func (s *Store) ShowcaseByProject(projectID string) (domain.Showcase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Showcases {
		if s.snap.Showcases[i].ProjectID == projectID {
			return s.snap.Showcases[i], true
		}
	}
	return domain.Showcase{}, false
}

// AddShowcase inserts a new showcase. Each project holds at most one;
// a duplicate returns ErrShowcaseExists.
func (s *Store) AddShowcase(sc domain.Showcase) (domain.Showcase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Showcases {
		if s.snap.Showcases[i].ProjectID == sc.ProjectID {
			return domain.Showcase{}, fmt.Errorf("project %s: %w", sc.ProjectID, ErrShowcaseExists)
		}
	}

	sc.ID = s.newID("showcase")
	sc.CreatedAt = s.now()
	sc.UpdatedAt = sc.CreatedAt
	if sc.Status == "" {
		sc.Status = domain.ShowcaseDraft
	}
	normalizeShowcase(&sc)
	s.snap.Showcases = append(s.snap.Showcases, sc)
	s.persistLocked()
	return sc, nil
}

// UpdateShowcase applies a patch, re-derives the amount fields and bumps
// UpdatedAt.
func (s *Store) UpdateShowcase(id string, patch domain.ShowcasePatch) (domain.Showcase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findShowcase(id)
	if i < 0 {
		return domain.Showcase{}, fmt.Errorf("showcase %s: %w", id, ErrNotFound)
	}
	sc := &s.snap.Showcases[i]

	if patch.Title != nil {
		sc.Title = *patch.Title
	}
	if patch.Introduction != nil {
		sc.Introduction = *patch.Introduction
	}
	if patch.Items != nil {
		sc.Items = *patch.Items
	}
	if patch.Discount != nil {
		sc.Discount = *patch.Discount
	}
	if patch.Notes != nil {
		sc.Notes = *patch.Notes
	}
	if patch.Status != nil {
		sc.Status = *patch.Status
	}
	if patch.SentAt != nil {
		sc.SentAt = patch.SentAt
	}
	if patch.ViewedAt != nil {
		sc.ViewedAt = patch.ViewedAt
	}
	if patch.RespondedAt != nil {
		sc.RespondedAt = patch.RespondedAt
	}
	normalizeShowcase(sc)
	sc.UpdatedAt = s.now()
	s.persistLocked()
	return *sc, nil
}

func (s *Store) DeleteShowcase(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findShowcase(id)
	if i < 0 {
		return fmt.Errorf("showcase %s: %w", id, ErrNotFound)
	}
	s.snap.Showcases = append(s.snap.Showcases[:i], s.snap.Showcases[i+1:]...)
	s.persistLocked()
	return nil
}

func (s *Store) findShowcase(id string) int {
	for i := range s.snap.Showcases {
		if s.snap.Showcases[i].ID == id {
			return i
		}
	}
	return -1
}
