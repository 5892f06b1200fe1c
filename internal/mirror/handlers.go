package mirror

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
)

// The write rules below intentionally mirror the in-process store: ids and
// timestamps are assigned server-side, document numbers come from the
// snapshot allocator, derived numerics are recomputed on every write and
// patch decoding drops protected fields. Keep both sides in step when
// changing either.

// newEntityID returns a timestamp-derived id. Like the store's allocator,
// consecutive calls within the same millisecond still produce distinct,
// ordered ids.
func (s *Server) newEntityID(prefix string) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= s.lastIDMillis {
		ms = s.lastIDMillis + 1
	}
	s.lastIDMillis = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}

// ── clients ──────────────────────────────────────────────────────────────────

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	out := snap.Clients
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]domain.Client, 0, len(out))
		for _, c := range out {
			if string(c.Status) == status {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}
	s.reply(w, http.StatusOK, out)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	for _, c := range snap.Clients {
		if c.ID == r.PathValue("id") {
			s.reply(w, http.StatusOK, c)
			return
		}
	}
	s.fail(w, http.StatusNotFound, "client not found")
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	c, err := decode[domain.Client](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = s.newEntityID("client")
	c.CreatedAt = time.Now().UTC()
	c.TotalProjects = 0
	c.TotalRevenue = 0
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	snap.Clients = append(snap.Clients, c)
	if s.save(r.Context(), w, snap) {
		s.reply(w, http.StatusCreated, c)
	}
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	patch, err := decode[domain.ClientPatch](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for i := range snap.Clients {
		if snap.Clients[i].ID != r.PathValue("id") {
			continue
		}
		c := &snap.Clients[i]
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
		if s.save(r.Context(), w, snap) {
			s.reply(w, http.StatusOK, *c)
		}
		return
	}
	s.fail(w, http.StatusNotFound, "client not found")
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	for i := range snap.Clients {
		if snap.Clients[i].ID == r.PathValue("id") {
			snap.Clients = append(snap.Clients[:i], snap.Clients[i+1:]...)
			if s.save(r.Context(), w, snap) {
				s.replyMessage(w, "client deleted")
			}
			return
		}
	}
	s.fail(w, http.StatusNotFound, "client not found")
}

// ── projects ─────────────────────────────────────────────────────────────────

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	out := snap.Projects
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]domain.Project, 0, len(out))
		for _, p := range out {
			if string(p.Status) == status {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		filtered := make([]domain.Project, 0, len(out))
		for _, p := range out {
			if p.ClientID == clientID {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	s.reply(w, http.StatusOK, out)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	for _, p := range snap.Projects {
		if p.ID == r.PathValue("id") {
			s.reply(w, http.StatusOK, p)
			return
		}
	}
	s.fail(w, http.StatusNotFound, "project not found")
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	p, err := decode[domain.Project](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = s.newEntityID("proj")
	p.CreatedAt = time.Now().UTC()
	if p.Status == "" {
		p.Status = domain.ProjectPlanning
	}
	resolveRef(snap, &p.ClientRef)
	for i := range p.Tasks {
		if p.Tasks[i].ID == "" {
			p.Tasks[i].ID = uuid.New().String()
		}
	}
	if len(p.Tasks) > 0 {
		p.Progress = p.DeriveProgress()
	}
	snap.Projects = append(snap.Projects, p)
	recomputeClient(snap, p.ClientID)
	if s.save(r.Context(), w, snap) {
		s.reply(w, http.StatusCreated, p)
	}
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	patch, err := decode[domain.ProjectPatch](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for i := range snap.Projects {
		if snap.Projects[i].ID != r.PathValue("id") {
			continue
		}
		p := &snap.Projects[i]
		prevClient := p.ClientID
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ClientID != nil {
			p.ClientID = *patch.ClientID
			resolveRef(snap, &p.ClientRef)
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
			for j := range p.Tasks {
				if p.Tasks[j].ID == "" {
					p.Tasks[j].ID = uuid.New().String()
				}
			}
			if len(p.Tasks) > 0 {
				p.Progress = p.DeriveProgress()
			}
		}
		recomputeClient(snap, p.ClientID)
		if prevClient != p.ClientID {
			recomputeClient(snap, prevClient)
		}
		if s.save(r.Context(), w, snap) {
			s.reply(w, http.StatusOK, *p)
		}
		return
	}
	s.fail(w, http.StatusNotFound, "project not found")
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	for i := range snap.Projects {
		if snap.Projects[i].ID == r.PathValue("id") {
			clientID := snap.Projects[i].ClientID
			snap.Projects = append(snap.Projects[:i], snap.Projects[i+1:]...)
			recomputeClient(snap, clientID)
			if s.save(r.Context(), w, snap) {
				s.replyMessage(w, "project deleted")
			}
			return
		}
	}
	s.fail(w, http.StatusNotFound, "project not found")
}

// ── proposals ────────────────────────────────────────────────────────────────

func (s *Server) listProposals(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	out := snap.Proposals
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]domain.Proposal, 0, len(out))
		for _, p := range out {
			if string(p.Status) == status {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		filtered := make([]domain.Proposal, 0, len(out))
		for _, p := range out {
			if p.ClientID == clientID {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	s.reply(w, http.StatusOK, out)
}

func (s *Server) getProposal(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	for _, p := range snap.Proposals {
		if p.ID == r.PathValue("id") {
			s.reply(w, http.StatusOK, p)
			return
		}
	}
	s.fail(w, http.StatusNotFound, "proposal not found")
}

func (s *Server) createProposal(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	p, err := decode[domain.Proposal](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	now := time.Now().UTC()
	p.ID = s.newEntityID("prop")
	p.CreatedAt = now
	p.Number = snap.NextNumber("TEK", now.Year())
	if p.Status == "" {
		p.Status = domain.ProposalDraft
	}
	resolveRef(snap, &p.ClientRef)
	normalizeItems(p.Items)
	if len(p.Items) > 0 {
		p.Amount = 0
		for _, it := range p.Items {
			p.Amount += it.Total
		}
	}
	snap.Proposals = append(snap.Proposals, p)
	if s.save(r.Context(), w, snap) {
		s.reply(w, http.StatusCreated, p)
	}
}

func (s *Server) updateProposal(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	patch, err := decode[domain.ProposalPatch](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for i := range snap.Proposals {
		if snap.Proposals[i].ID != r.PathValue("id") {
			continue
		}
		p := &snap.Proposals[i]
		if patch.ClientID != nil {
			p.ClientID = *patch.ClientID
			resolveRef(snap, &p.ClientRef)
		}
		if patch.ProjectName != nil {
			p.ProjectName = *patch.ProjectName
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Items != nil {
			p.Items = *patch.Items
			normalizeItems(p.Items)
			p.Amount = 0
			for _, it := range p.Items {
				p.Amount += it.Total
			}
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
		if s.save(r.Context(), w, snap) {
			s.reply(w, http.StatusOK, *p)
		}
		return
	}
	s.fail(w, http.StatusNotFound, "proposal not found")
}

func (s *Server) deleteProposal(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	for i := range snap.Proposals {
		if snap.Proposals[i].ID == r.PathValue("id") {
			snap.Proposals = append(snap.Proposals[:i], snap.Proposals[i+1:]...)
			if s.save(r.Context(), w, snap) {
				s.replyMessage(w, "proposal deleted")
			}
			return
		}
	}
	s.fail(w, http.StatusNotFound, "proposal not found")
}

// ── contracts ────────────────────────────────────────────────────────────────

func (s *Server) listContracts(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	out := snap.Contracts
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]domain.Contract, 0, len(out))
		for _, c := range out {
			if string(c.Status) == status {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		filtered := make([]domain.Contract, 0, len(out))
		for _, c := range out {
			if c.ClientID == clientID {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}
	s.reply(w, http.StatusOK, out)
}

func (s *Server) getContract(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.load(r.Context())
	for _, c := range snap.Contracts {
		if c.ID == r.PathValue("id") {
			s.reply(w, http.StatusOK, c)
			return
		}
	}
	s.fail(w, http.StatusNotFound, "contract not found")
}

func (s *Server) createContract(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	c, err := decode[domain.Contract](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	now := time.Now().UTC()
	c.ID = s.newEntityID("cont")
	c.CreatedAt = now
	c.Number = snap.NextNumber("SOZ", now.Year())
	c.SignedAt = nil
	if c.Status == "" {
		c.Status = domain.ContractDraft
	}
	resolveRef(snap, &c.ClientRef)
	snap.Contracts = append(snap.Contracts, c)
	if s.save(r.Context(), w, snap) {
		s.reply(w, http.StatusCreated, c)
	}
}

func (s *Server) updateContract(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	patch, err := decode[domain.ContractPatch](r)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for i := range snap.Contracts {
		if snap.Contracts[i].ID != r.PathValue("id") {
			continue
		}
		c := &snap.Contracts[i]
		if patch.ProjectID != nil {
			c.ProjectID = *patch.ProjectID
		}
		if patch.ProjectName != nil {
			c.ProjectName = *patch.ProjectName
		}
		if patch.ClientID != nil {
			c.ClientID = *patch.ClientID
			resolveRef(snap, &c.ClientRef)
		}
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.Status != nil {
			if *patch.Status == domain.ContractSigned && c.SignedAt == nil {
				now := time.Now().UTC()
				c.SignedAt = &now
			}
			c.Status = *patch.Status
		}
		if s.save(r.Context(), w, snap) {
			s.reply(w, http.StatusOK, *c)
		}
		return
	}
	s.fail(w, http.StatusNotFound, "contract not found")
}

func (s *Server) deleteContract(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.load(r.Context())
	if !ok {
		s.unavailable(w)
		return
	}
	for i := range snap.Contracts {
		if snap.Contracts[i].ID == r.PathValue("id") {
			snap.Contracts = append(snap.Contracts[:i], snap.Contracts[i+1:]...)
			if s.save(r.Context(), w, snap) {
				s.replyMessage(w, "contract deleted")
			}
			return
		}
	}
	s.fail(w, http.StatusNotFound, "contract not found")
}

// ── shared write rules ───────────────────────────────────────────────────────

func resolveRef(snap *persist.Snapshot, ref *domain.ClientRef) {
	if ref.ClientID == "" {
		return
	}
	for i := range snap.Clients {
		if snap.Clients[i].ID == ref.ClientID {
			ref.ClientName = snap.Clients[i].Company
			return
		}
	}
}

func recomputeClient(snap *persist.Snapshot, clientID string) {
	if clientID == "" {
		return
	}
	for i := range snap.Clients {
		if snap.Clients[i].ID != clientID {
			continue
		}
		count := 0
		var revenue float64
		for _, p := range snap.Projects {
			if p.ClientID == clientID {
				count++
				revenue += p.Budget
			}
		}
		snap.Clients[i].TotalProjects = count
		snap.Clients[i].TotalRevenue = revenue
		return
	}
}

func normalizeItems(items []domain.ProposalItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].Total = items[i].Quantity * items[i].UnitPrice
	}
}
