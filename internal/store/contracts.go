package store

import (
	"fmt"

	"github.com/meanval/meanval/internal/domain"
)

// Contracts returns the collection in insertion order.
func (s *Store) Contracts() []domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Contract, len(s.snap.Contracts))
	copy(out, s.snap.Contracts)
	return out
}

func (s *Store) Contract(id string) (domain.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findContract(id); i >= 0 {
		return s.snap.Contracts[i], true
	}
	return domain.Contract{}, false
}

// AddContract inserts a new contract and assigns its SOZ-YYYY-NNN number.
func (s *Store) AddContract(c domain.Contract) domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID("cont")
	c.CreatedAt = s.now()
	c.Number = s.snap.NextNumber("SOZ", s.now().Year())
	c.SignedAt = nil
	if c.Status == "" {
		c.Status = domain.ContractDraft
	}
	s.resolveRefLocked(&c.ClientRef)
	s.snap.Contracts = append(s.snap.Contracts, c)
	s.persistLocked()
	return c
}

// UpdateContract applies a patch. The first transition to signed stamps
// SignedAt; repeating the transition leaves the original stamp in place.
func (s *Store) UpdateContract(id string, patch domain.ContractPatch) (domain.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findContract(id)
	if i < 0 {
		return domain.Contract{}, fmt.Errorf("contract %s: %w", id, ErrNotFound)
	}
	c := &s.snap.Contracts[i]

	if patch.ProjectID != nil {
		c.ProjectID = *patch.ProjectID
	}
	if patch.ProjectName != nil {
		c.ProjectName = *patch.ProjectName
	}
	if patch.ClientID != nil {
		c.ClientID = *patch.ClientID
		s.resolveRefLocked(&c.ClientRef)
	}
	if patch.Content != nil {
		c.Content = *patch.Content
	}
	if patch.Status != nil {
		if *patch.Status == domain.ContractSigned && c.SignedAt == nil {
			now := s.now()
			c.SignedAt = &now
		}
		c.Status = *patch.Status
	}
	s.persistLocked()
	return *c, nil
}

func (s *Store) DeleteContract(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findContract(id)
	if i < 0 {
		return fmt.Errorf("contract %s: %w", id, ErrNotFound)
	}
	s.snap.Contracts = append(s.snap.Contracts[:i], s.snap.Contracts[i+1:]...)
	s.persistLocked()
	return nil
}

func (s *Store) findContract(id string) int {
	for i := range s.snap.Contracts {
		if s.snap.Contracts[i].ID == id {
			return i
		}
	}
	return -1
}
