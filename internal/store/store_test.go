package store_test

import (
	"context"
	"fmt"
	"time"

	"testing"

	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/meanval/meanval/internal/store"
	"github.com/meanval/meanval/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Open_FallsBackToSeedData(t *testing.T) {
	s := store.Open(context.Background(), testutil.FailingSlotStore{}, nil)

	assert.Len(t, s.Clients(), 5, "seed dataset should load when the slot is down")
	assert.Len(t, s.Projects(), 6)
	assert.Len(t, s.Proposals(), 5)
	assert.Len(t, s.Contracts(), 4)
	assert.Len(t, s.Showcases(), 3)
}

func TestStore_Open_EmptySlotSeedsAndSaves(t *testing.T) {
	slot := testutil.NewMemorySlotStore()
	s := store.Open(context.Background(), slot, nil)

	assert.Len(t, s.Clients(), 5)
	assert.Equal(t, 1, slot.Saves(), "seed snapshot should be written out")
}

func TestStore_AddClient_AssignsIDAndDefaults(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	c := s.AddClient(domain.Client{Name: "Mehmet Kaya", Company: "ACME Inc."})

	assert.Contains(t, c.ID, "client-")
	assert.Equal(t, domain.ClientActive, c.Status, "status should default to active")
	assert.False(t, c.CreatedAt.IsZero())

	fetched, ok := s.Client(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, fetched)
}

func TestStore_AddClient_DiscardsDerivedAggregates(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	c := s.AddClient(domain.Client{Name: "Test", TotalProjects: 99, TotalRevenue: 1e6})

	assert.Zero(t, c.TotalProjects, "payload aggregates must be ignored")
	assert.Zero(t, c.TotalRevenue)
}

func TestStore_NewIDs_UniqueWithinMillisecond(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := s.AddClient(testutil.NewTestClient(fmt.Sprintf("Client %d", i)))
		assert.False(t, seen[c.ID], "id %s issued twice", c.ID)
		seen[c.ID] = true
	}
}

func TestStore_UpdateClient_AppliesOnlyPatchedFields(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	c := s.AddClient(testutil.NewTestClient("Ayşe Demir"))

	email := "ayse@newdomain.io"
	updated, err := s.UpdateClient(c.ID, domain.ClientPatch{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, email, updated.Email)
	assert.Equal(t, c.Name, updated.Name, "unpatched fields keep their values")
	assert.Equal(t, c.Company, updated.Company)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)
}

func TestStore_UpdateClient_NotFound(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	name := "x"
	_, err := s.UpdateClient("client-missing", domain.ClientPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_DeleteClient_KeepsDependentRecords(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	c := s.AddClient(testutil.NewTestClient("Ali"))
	p := s.AddProject(testutil.NewTestProject("Web Sitesi", testutil.WithClientID(c.ID)))

	require.NoError(t, s.DeleteClient(c.ID))

	_, ok := s.Client(c.ID)
	assert.False(t, ok)

	kept, ok := s.Project(p.ID)
	require.True(t, ok, "projects survive client deletion")
	assert.Equal(t, c.ID, kept.ClientID, "dangling reference is kept")

	assert.ErrorIs(t, s.DeleteClient(c.ID), store.ErrNotFound)
}

func TestStore_AddProject_SnapshotsClientNameAndRecomputesAggregates(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	c := s.AddClient(testutil.NewTestClient("Zeynep", testutil.WithCompany("CodeCraft")))

	p := s.AddProject(testutil.NewTestProject("SaaS Platform",
		testutil.WithClientID(c.ID), testutil.WithBudget(350000)))

	assert.Equal(t, "CodeCraft", p.ClientName, "cached name comes from the client's company")

	after, _ := s.Client(c.ID)
	assert.Equal(t, 1, after.TotalProjects)
	assert.Equal(t, 350000.0, after.TotalRevenue)
}

func TestStore_UpdateProject_ClientChangeRecomputesBothClients(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	a := s.AddClient(testutil.NewTestClient("A", testutil.WithCompany("ACME Inc.")))
	b := s.AddClient(testutil.NewTestClient("B", testutil.WithCompany("TechFlow")))
	p := s.AddProject(testutil.NewTestProject("CRM", testutil.WithClientID(a.ID), testutil.WithBudget(120000)))

	_, err := s.UpdateProject(p.ID, domain.ProjectPatch{ClientID: &b.ID})
	require.NoError(t, err)

	afterA, _ := s.Client(a.ID)
	afterB, _ := s.Client(b.ID)
	assert.Zero(t, afterA.TotalProjects, "old client loses the project")
	assert.Zero(t, afterA.TotalRevenue)
	assert.Equal(t, 1, afterB.TotalProjects)
	assert.Equal(t, 120000.0, afterB.TotalRevenue)

	moved, _ := s.Project(p.ID)
	assert.Equal(t, "TechFlow", moved.ClientName, "cached name follows the new client")
}

func TestStore_UpdateProject_TasksDriveProgress(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	p := s.AddProject(testutil.NewTestProject("Dashboard"))

	tasks := []domain.Task{
		{Title: "Analiz", Completed: true},
		{Title: "Geliştirme", Completed: false},
	}
	updated, err := s.UpdateProject(p.ID, domain.ProjectPatch{Tasks: &tasks})
	require.NoError(t, err)

	assert.Equal(t, 50, updated.Progress, "progress re-derived from the task list")
	for _, task := range updated.Tasks {
		assert.NotEmpty(t, task.ID, "new tasks get ids assigned")
	}
}

func TestStore_UpdateClient_RenameLeavesRefsStaleUntilReconciled(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	c := s.AddClient(testutil.NewTestClient("Can", testutil.WithCompany("Digital Nexus")))
	p := s.AddProject(testutil.NewTestProject("API Entegrasyonu", testutil.WithClientID(c.ID)))
	prop := s.AddProposal(testutil.NewTestProposal("API Entegrasyonu",
		func(pr *domain.Proposal) { pr.ClientID = c.ID }))
	cont := s.AddContract(testutil.NewTestContract("API Entegrasyonu",
		func(ct *domain.Contract) { ct.ClientID = c.ID }))

	company := "Nexus Digital"
	_, err := s.UpdateClient(c.ID, domain.ClientPatch{Company: &company})
	require.NoError(t, err)

	stale, _ := s.Project(p.ID)
	assert.Equal(t, "Digital Nexus", stale.ClientName, "rename does not rewrite cached names")

	s.ReconcileClientRefs(c.ID)

	freshP, _ := s.Project(p.ID)
	freshProp, _ := s.Proposal(prop.ID)
	freshCont, _ := s.Contract(cont.ID)
	assert.Equal(t, "Nexus Digital", freshP.ClientName)
	assert.Equal(t, "Nexus Digital", freshProp.ClientName)
	assert.Equal(t, "Nexus Digital", freshCont.ClientName)
}

func TestStore_AddProposal_AssignsSequentialNumbers(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	year := time.Now().UTC().Year()

	first := s.AddProposal(testutil.NewTestProposal("Mobil Uygulama"))
	second := s.AddProposal(testutil.NewTestProposal("Web Sitesi"))

	assert.Equal(t, fmt.Sprintf("TEK-%d-001", year), first.Number)
	assert.Equal(t, fmt.Sprintf("TEK-%d-002", year), second.Number)
}

func TestStore_AddProposal_NumberNotReusedAfterDelete(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	year := time.Now().UTC().Year()

	first := s.AddProposal(testutil.NewTestProposal("Birinci"))
	require.NoError(t, s.DeleteProposal(first.ID))

	second := s.AddProposal(testutil.NewTestProposal("İkinci"))
	assert.Equal(t, fmt.Sprintf("TEK-%d-002", year), second.Number,
		"deleting the highest-numbered proposal must not release its number")
}

func TestStore_AddProposal_DerivesAmountFromItems(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	p := s.AddProposal(testutil.NewTestProposal("SaaS Platform",
		testutil.WithAmount(1),
		testutil.WithItems(
			domain.ProposalItem{Description: "Tasarım", Quantity: 1, UnitPrice: 15000},
			domain.ProposalItem{Description: "Bakım", Quantity: 12, UnitPrice: 3000},
		)))

	assert.Equal(t, 51000.0, p.Amount, "amount is the sum of line totals, not the payload value")
	assert.Equal(t, 15000.0, p.Items[0].Total)
	assert.Equal(t, 36000.0, p.Items[1].Total)
	assert.NotEmpty(t, p.Items[0].ID)
}

func TestStore_UpdateProposal_NumberSurvivesPatch(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	p := s.AddProposal(testutil.NewTestProposal("Teklif"))

	status := domain.ProposalSent
	updated, err := s.UpdateProposal(p.ID, domain.ProposalPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, p.Number, updated.Number)
	assert.Equal(t, domain.ProposalSent, updated.Status)
}

func TestStore_UpdateProposal_EmptyItemsZeroTheAmount(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	p := s.AddProposal(testutil.NewTestProposal("Teklif",
		testutil.WithItems(domain.ProposalItem{Description: "Tasarım", Quantity: 1, UnitPrice: 20000})))
	require.Equal(t, 20000.0, p.Amount)

	empty := []domain.ProposalItem{}
	updated, err := s.UpdateProposal(p.ID, domain.ProposalPatch{Items: &empty})
	require.NoError(t, err)
	assert.Zero(t, updated.Amount, "clearing the items clears the derived amount")

	amount := 7500.0
	updated, err = s.UpdateProposal(p.ID, domain.ProposalPatch{Items: &empty, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 7500.0, updated.Amount, "an explicit amount wins over the derived value")
}

func TestStore_AddContract_AssignsNumberAndClearsSignedAt(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	year := time.Now().UTC().Year()

	now := time.Now().UTC()
	c := s.AddContract(testutil.NewTestContract("E-Ticaret Platformu",
		func(ct *domain.Contract) { ct.SignedAt = &now }))

	assert.Equal(t, fmt.Sprintf("SOZ-%d-001", year), c.Number)
	assert.Nil(t, c.SignedAt, "a new contract is never born signed")
	assert.Equal(t, domain.ContractDraft, c.Status)
}

func TestStore_UpdateContract_SignedAtStampedOnce(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	c := s.AddContract(testutil.NewTestContract("Sözleşme"))

	signed := domain.ContractSigned
	first, err := s.UpdateContract(c.ID, domain.ContractPatch{Status: &signed})
	require.NoError(t, err)
	require.NotNil(t, first.SignedAt)

	// Move away and sign again; the original stamp must survive.
	draft := domain.ContractDraft
	_, err = s.UpdateContract(c.ID, domain.ContractPatch{Status: &draft})
	require.NoError(t, err)

	second, err := s.UpdateContract(c.ID, domain.ContractPatch{Status: &signed})
	require.NoError(t, err)
	require.NotNil(t, second.SignedAt)
	assert.Equal(t, *first.SignedAt, *second.SignedAt)
}

func TestStore_AddShowcase_OnePerProject(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	p := s.AddProject(testutil.NewTestProject("Vitrin Projesi"))

	_, err := s.AddShowcase(testutil.NewTestShowcase(p.ID, "Teklif Detayları"))
	require.NoError(t, err)

	_, err = s.AddShowcase(testutil.NewTestShowcase(p.ID, "İkinci Vitrin"))
	assert.ErrorIs(t, err, store.ErrShowcaseExists)
}

func TestStore_AddShowcase_DerivesAmounts(t *testing.T) {
	s, _ := testutil.NewTestStore(t)

	sc, err := s.AddShowcase(testutil.NewTestShowcase("proj-x", "Vitrin",
		testutil.WithDiscount(5000)))
	require.NoError(t, err)

	assert.Equal(t, 100000.0, sc.TotalAmount)
	assert.Equal(t, 95000.0, sc.FinalAmount)
	for _, it := range sc.Items {
		assert.NotEmpty(t, it.ID)
	}
}

func TestStore_UpdateShowcase_RederivesAmounts(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	sc, err := s.AddShowcase(testutil.NewTestShowcase("proj-y", "Vitrin"))
	require.NoError(t, err)

	items := []domain.ShowcaseItem{
		{Name: "Entegrasyon", Quantity: 3, UnitPrice: 10000},
	}
	updated, err := s.UpdateShowcase(sc.ID, domain.ShowcasePatch{Items: &items})
	require.NoError(t, err)

	assert.Equal(t, 30000.0, updated.TotalAmount)
	assert.Equal(t, 30000.0, updated.FinalAmount)
	assert.Equal(t, domain.CategoryOther, updated.Items[0].Category, "missing category defaults to other")
	assert.True(t, updated.UpdatedAt.After(sc.UpdatedAt) || updated.UpdatedAt.Equal(sc.UpdatedAt))
}

func TestStore_ShowcaseByProject(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	sc, err := s.AddShowcase(testutil.NewTestShowcase("proj-z", "Vitrin"))
	require.NoError(t, err)

	found, ok := s.ShowcaseByProject("proj-z")
	require.True(t, ok)
	assert.Equal(t, sc.ID, found.ID)

	_, ok = s.ShowcaseByProject("proj-other")
	assert.False(t, ok)
}

func TestStore_Stats(t *testing.T) {
	s, _ := testutil.NewTestStore(t)
	active := s.AddClient(testutil.NewTestClient("Aktif"))
	s.AddClient(testutil.NewTestClient("Pasif", testutil.WithClientStatus(domain.ClientInactive)))

	s.AddProject(testutil.NewTestProject("P1", testutil.WithClientID(active.ID), testutil.WithBudget(100000)))
	s.AddProject(testutil.NewTestProject("P2",
		testutil.WithProjectStatus(domain.ProjectInProgress), testutil.WithBudget(45000)))

	s.AddProposal(testutil.NewTestProposal("P1"))
	s.AddProposal(testutil.NewTestProposal("P2", testutil.WithProposalStatus(domain.ProposalAccepted)))

	st := s.Stats()
	assert.Equal(t, 2, st.TotalProjects)
	assert.Equal(t, 1, st.ActiveClients)
	assert.Equal(t, 1, st.PendingProposals, "only draft and sent proposals are pending")
	assert.Equal(t, 145000.0, st.TotalRevenue)
	assert.Equal(t, 1, st.ProjectsByStatus[domain.ProjectPlanning])
	assert.Equal(t, 1, st.ProjectsByStatus[domain.ProjectInProgress])
}

func TestStore_MutationsPersistThroughSlot(t *testing.T) {
	s, slot := testutil.NewTestStore(t)

	c := s.AddClient(testutil.NewTestClient("Kalıcı"))
	p := s.AddProject(testutil.NewTestProject("Kalıcı Proje", testutil.WithClientID(c.ID)))
	s.Flush()

	assert.GreaterOrEqual(t, slot.Saves(), 2)

	// A second store opened on the same slot sees the saved state,
	// with dates revived intact.
	reopened := store.Open(context.Background(), slot, nil)
	fetched, ok := reopened.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, fetched)

	client, ok := reopened.Client(c.ID)
	require.True(t, ok)
	assert.Equal(t, c.CreatedAt, client.CreatedAt)
}

// laggySlot stalls the save of the snapshot holding exactly slowAt clients,
// so a save scheduled earlier finishes after later ones have had time to run.
type laggySlot struct {
	*testutil.MemorySlotStore
	slowAt int
}

func (l *laggySlot) Save(ctx context.Context, snap *persist.Snapshot) error {
	if len(snap.Clients) == l.slowAt {
		time.Sleep(80 * time.Millisecond)
	}
	return l.MemorySlotStore.Save(ctx, snap)
}

func TestStore_SlowSaveCannotClobberLaterMutation(t *testing.T) {
	slot := &laggySlot{MemorySlotStore: testutil.NewMemorySlotStore(), slowAt: 1}
	require.NoError(t, slot.Seed(&persist.Snapshot{Clients: []domain.Client{}}))

	s := store.Open(context.Background(), slot, nil)
	s.AddClient(testutil.NewTestClient("Birinci"))
	s.AddClient(testutil.NewTestClient("İkinci"))
	s.Flush()

	reopened := store.Open(context.Background(), slot, nil)
	assert.Len(t, reopened.Clients(), 2,
		"the stalled first save must not overwrite the second mutation in the slot")
}
