package store

import "github.com/meanval/meanval/internal/domain"

// Stats is the dashboard summary derived from the live collections.
type Stats struct {
	TotalProjects    int
	ActiveClients    int
	PendingProposals int
	TotalRevenue     float64
	ProjectsByStatus map[domain.ProjectStatus]int
}

// Stats derives the dashboard summary. Revenue is the sum of all project
// budgets.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{ProjectsByStatus: make(map[domain.ProjectStatus]int)}
	st.TotalProjects = len(s.snap.Projects)
	for _, p := range s.snap.Projects {
		st.ProjectsByStatus[p.Status]++
		st.TotalRevenue += p.Budget
	}
	for _, c := range s.snap.Clients {
		if c.Status == domain.ClientActive {
			st.ActiveClients++
		}
	}
	for _, p := range s.snap.Proposals {
		if p.Status == domain.ProposalDraft || p.Status == domain.ProposalSent {
			st.PendingProposals++
		}
	}
	return st
}
