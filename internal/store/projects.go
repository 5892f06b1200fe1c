package store

import (
	"fmt"

	"github.com/meanval/meanval/internal/domain"
)

// Projects returns the collection in insertion order.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.snap.Projects))
	copy(out, s.snap.Projects)
	return out
}

func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findProject(id); i >= 0 {
		return s.snap.Projects[i], true
	}
	return domain.Project{}, false
}

func (s *Store) AddProject(p domain.Project) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID("proj")
	p.CreatedAt = s.now()
	if p.Status == "" {
		p.Status = domain.ProjectPlanning
	}
	s.resolveRefLocked(&p.ClientRef)
	normalizeTasks(p.Tasks)
	if len(p.Tasks) > 0 {
		p.Progress = p.DeriveProgress()
	}
	s.snap.Projects = append(s.snap.Projects, p)
	s.recomputeClientLocked(p.ClientID)
	s.persistLocked()
	return p
}

func (s *Store) UpdateProject(id string, patch domain.ProjectPatch) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProject(id)
	if i < 0 {
		return domain.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	p := &s.snap.Projects[i]
	prevClient := p.ClientID

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ClientID != nil {
		p.ClientID = *patch.ClientID
		s.resolveRefLocked(&p.ClientRef)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Tasks != nil {
		p.Tasks = *patch.Tasks
		normalizeTasks(p.Tasks)
		if len(p.Tasks) > 0 {
			p.Progress = p.DeriveProgress()
		}
	}

	if prevClient != p.ClientID {
		s.recomputeClientLocked(prevClient)
	}
	s.recomputeClientLocked(p.ClientID)
	s.persistLocked()
	return *p, nil
}

// DeleteProject removes a project without cascading to its contracts or
// showcase; those keep their dangling projectId references.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProject(id)
	if i < 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	clientID := s.snap.Projects[i].ClientID
	s.snap.Projects = append(s.snap.Projects[:i], s.snap.Projects[i+1:]...)
	s.recomputeClientLocked(clientID)
	s.persistLocked()
	return nil
}

func (s *Store) findProject(id string) int {
	for i := range s.snap.Projects {
		if s.snap.Projects[i].ID == id {
			return i
		}
	}
	return -1
}
