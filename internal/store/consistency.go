package store

import (
	"github.com/meanval/meanval/internal/domain"
	"github.com/google/uuid"
)

// Denormalization is snapshot-at-write: the cached clientName on projects,
// proposals and contracts is resolved from the Clients collection at the
// moment of the write and goes stale if the client is renamed afterwards.
// Derived numerics (item totals, showcase amounts, client aggregates) are
// the store's responsibility and are re-derived on every write, so no
// stored total can diverge from its formula.

// resolveRefLocked re-snapshots the cached company name for a reference.
// An unknown client id leaves the cached name untouched: dangling
// references are tolerated, not repaired.
func (s *Store) resolveRefLocked(ref *domain.ClientRef) {
	if ref.ClientID == "" {
		return
	}
	if i := s.findClient(ref.ClientID); i >= 0 {
		ref.ClientName = s.snap.Clients[i].Company
	}
}

// recomputeClientLocked re-derives a client's project count and revenue
// from the projects that reference it. Unknown ids are a no-op.
func (s *Store) recomputeClientLocked(clientID string) {
	if clientID == "" {
		return
	}
	i := s.findClient(clientID)
	if i < 0 {
		return
	}
	count := 0
	var revenue float64
	for _, p := range s.snap.Projects {
		if p.ClientID == clientID {
			count++
			revenue += p.Budget
		}
	}
	s.snap.Clients[i].TotalProjects = count
	s.snap.Clients[i].TotalRevenue = revenue
}

// ReconcileClientRefs refreshes the cached clientName on every project,
// proposal and contract referencing the given client. This is the explicit
// reconciliation pass callers invoke after renaming a client; nothing runs
// it automatically.
func (s *Store) ReconcileClientRefs(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findClient(clientID)
	if i < 0 {
		return
	}
	company := s.snap.Clients[i].Company
	changed := false
	for j := range s.snap.Projects {
		if s.snap.Projects[j].ClientID == clientID && s.snap.Projects[j].ClientName != company {
			s.snap.Projects[j].ClientName = company
			changed = true
		}
	}
	for j := range s.snap.Proposals {
		if s.snap.Proposals[j].ClientID == clientID && s.snap.Proposals[j].ClientName != company {
			s.snap.Proposals[j].ClientName = company
			changed = true
		}
	}
	for j := range s.snap.Contracts {
		if s.snap.Contracts[j].ClientID == clientID && s.snap.Contracts[j].ClientName != company {
			s.snap.Contracts[j].ClientName = company
			changed = true
		}
	}
	if changed {
		s.persistLocked()
	}
}

// normalizeTasks assigns ids to new tasks.
func normalizeTasks(tasks []domain.Task) {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.New().String()
		}
	}
}

// normalizeProposalItems assigns ids and re-derives line totals.
func normalizeProposalItems(items []domain.ProposalItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].Total = items[i].Quantity * items[i].UnitPrice
	}
}

// normalizeShowcase assigns item ids and re-derives the amount fields.
func normalizeShowcase(sc *domain.Showcase) {
	for i := range sc.Items {
		if sc.Items[i].ID == "" {
			sc.Items[i].ID = uuid.New().String()
		}
		if sc.Items[i].Category == "" {
			sc.Items[i].Category = domain.CategoryOther
		}
	}
	sc.TotalAmount = sc.ItemsTotal()
	sc.FinalAmount = sc.TotalAmount - sc.Discount
}
