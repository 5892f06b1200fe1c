package store

import (
	"fmt"

	"github.com/meanval/meanval/internal/domain"
)

// Proposals returns the collection in insertion order.
func (s *Store) Proposals() []domain.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Proposal, len(s.snap.Proposals))
	copy(out, s.snap.Proposals)
	return out
}

func (s *Store) Proposal(id string) (domain.Proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findProposal(id); i >= 0 {
		return s.snap.Proposals[i], true
	}
	return domain.Proposal{}, false
}

// AddProposal inserts a new proposal and assigns its TEK-YYYY-NNN number
// from the monotonic allocator. Any number in the payload is discarded.
func (s *Store) AddProposal(p domain.Proposal) domain.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID("prop")
	p.CreatedAt = s.now()
	p.Number = s.snap.NextNumber("TEK", s.now().Year())
	if p.Status == "" {
		p.Status = domain.ProposalDraft
	}
	s.resolveRefLocked(&p.ClientRef)
	normalizeProposalItems(p.Items)
	if len(p.Items) > 0 {
		p.Amount = itemsAmount(p.Items)
	}
	s.snap.Proposals = append(s.snap.Proposals, p)
	s.persistLocked()
	return p
}

// UpdateProposal applies a patch. The number is not part of the patch type
// and therefore can never change after creation. Patching Items re-derives
// the amount from the new items, so an empty list zeroes it; an explicit
// Amount in the same patch wins over the derived value.
func (s *Store) UpdateProposal(id string, patch domain.ProposalPatch) (domain.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProposal(id)
	if i < 0 {
		return domain.Proposal{}, fmt.Errorf("proposal %s: %w", id, ErrNotFound)
	}
	p := &s.snap.Proposals[i]

	if patch.ClientID != nil {
		p.ClientID = *patch.ClientID
		s.resolveRefLocked(&p.ClientRef)
	}
	if patch.ProjectName != nil {
		p.ProjectName = *patch.ProjectName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Items != nil {
		p.Items = *patch.Items
		normalizeProposalItems(p.Items)
		p.Amount = itemsAmount(p.Items)
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ValidUntil != nil {
		p.ValidUntil = *patch.ValidUntil
	}
	s.persistLocked()
	return *p, nil
}

func (s *Store) DeleteProposal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProposal(id)
	if i < 0 {
		return fmt.Errorf("proposal %s: %w", id, ErrNotFound)
	}
	s.snap.Proposals = append(s.snap.Proposals[:i], s.snap.Proposals[i+1:]...)
	s.persistLocked()
	return nil
}

func (s *Store) findProposal(id string) int {
	for i := range s.snap.Proposals {
		if s.snap.Proposals[i].ID == id {
			return i
		}
	}
	return -1
}

func itemsAmount(items []domain.ProposalItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}
