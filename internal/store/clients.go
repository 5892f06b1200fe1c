package store

import (
	"fmt"

	"github.com/meanval/meanval/internal/domain"
)

// Clients returns the collection in insertion order.
func (s *Store) Clients() []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Client, len(s.snap.Clients))
	copy(out, s.snap.Clients)
	return out
}

// Client looks up a client by id. Absence is reported via ok, not an error.
func (s *Store) Client(id string) (domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findClient(id); i >= 0 {
		return s.snap.Clients[i], true
	}
	return domain.Client{}, false
}

// AddClient inserts a new client. The id, creation time and derived
// aggregates are assigned here; payload values for them are ignored.
func (s *Store) AddClient(c domain.Client) domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID("client")
	c.CreatedAt = s.now()
	c.TotalProjects = 0
	c.TotalRevenue = 0
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	s.snap.Clients = append(s.snap.Clients, c)
	s.persistLocked()
	return c
}

// UpdateClient applies a patch. Renaming a company does NOT rewrite the
// cached clientName on dependent records; call ReconcileClientRefs for that.
func (s *Store) UpdateClient(id string, patch domain.ClientPatch) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findClient(id)
	if i < 0 {
		return domain.Client{}, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	c := &s.snap.Clients[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	s.persistLocked()
	return *c, nil
}

// DeleteClient removes a client. Projects, proposals and contracts that
// reference it keep their cached values; readers tolerate the dangling id.
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findClient(id)
	if i < 0 {
		return fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	s.snap.Clients = append(s.snap.Clients[:i], s.snap.Clients[i+1:]...)
	s.persistLocked()
	return nil
}

func (s *Store) findClient(id string) int {
	for i := range s.snap.Clients {
		if s.snap.Clients[i].ID == id {
			return i
		}
	}
	return -1
}
