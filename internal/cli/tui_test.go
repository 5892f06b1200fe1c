package cli

import (
	"testing"

	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/store"
	"github.com/meanval/meanval/internal/teatest"
	"github.com/meanval/meanval/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T) (*teatest.Driver, *store.Store, *testutil.MemorySlotStore) {
	t.Helper()
	s, slot := testutil.NewTestStore(t)
	app := &App{Store: s, IsInteractive: true}

	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d, s, slot
}

func TestApp_StartsOnDashboard(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddProject(testutil.NewTestProject("E-Ticaret Platformu", testutil.WithBudget(150000)))
	d.PressKey('r')

	view := d.View()
	assert.Contains(t, view, "meanval")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "BY STATUS")
	assert.Contains(t, view, "E-Ticaret Platformu")
	assert.Contains(t, view, "₺150.000")
}

func TestApp_QuitKey(t *testing.T) {
	d, _, _ := newTestTUI(t)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestApp_CtrlCQuits(t *testing.T) {
	d, _, _ := newTestTUI(t)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestApp_SectionShortcuts(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddClient(testutil.NewTestClient("Mehmet Kaya", testutil.WithCompany("ACME Inc.")))

	d.PressKey('C')
	assert.Contains(t, d.View(), "ACME Inc.")
	assert.Contains(t, d.View(), "Clients")

	d.PressKey('B')
	assert.Contains(t, d.View(), "Planlama")
	assert.Contains(t, d.View(), "Board")

	d.PressKey('D')
	assert.Contains(t, d.View(), "BY STATUS")
}

func TestBoard_GrabMoveDrop_CommitsStatus(t *testing.T) {
	d, s, _ := newTestTUI(t)
	p := s.AddProject(testutil.NewTestProject("Mobil Uygulama"))

	d.PressKey('B')
	d.PressEnter()     // grab the card in the planning column
	d.PressKey('l')    // move it one column right
	d.PressEnter()     // drop

	moved, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ProjectInProgress, moved.Status)
	assert.Contains(t, d.View(), "Devam Ediyor", "flash confirms the move")
}

func TestBoard_GrabShowsHeldMarker(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddProject(testutil.NewTestProject("CRM Sistemi"))

	d.PressKey('B')
	d.PressEnter()
	assert.Contains(t, d.View(), "◆", "held card is marked")
}

func TestBoard_EscCancelsGrab(t *testing.T) {
	d, s, _ := newTestTUI(t)
	p := s.AddProject(testutil.NewTestProject("Web Sitesi"))

	d.PressKey('B')
	d.PressEnter()
	d.PressKey('l')
	d.PressKey('l') // now two columns away from home
	d.PressEsc()

	kept, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ProjectPlanning, kept.Status, "cancel reverts the working copy")
	assert.NotContains(t, d.View(), "◆", "card is released")
	assert.Contains(t, d.View(), "Board", "esc while grabbed does not pop the view")
}

func TestBoard_DropOnSourceColumnWritesNothing(t *testing.T) {
	d, s, slot := newTestTUI(t)
	s.AddProject(testutil.NewTestProject("API Entegrasyonu"))
	s.Flush()
	before := slot.Saves()

	d.PressKey('B')
	d.PressEnter()
	d.PressEnter() // drop without moving

	s.Flush()
	assert.Equal(t, before, slot.Saves(), "same-column drop is a no-op")
}

func TestBoard_EmptyColumnPlaceholder(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddProject(testutil.NewTestProject("Tek Proje"))

	d.PressKey('B')
	assert.Contains(t, d.View(), "(empty)")
}

func TestClientList_DrillDownIntoProjects(t *testing.T) {
	d, s, _ := newTestTUI(t)
	c := s.AddClient(testutil.NewTestClient("Ayşe Demir", testutil.WithCompany("TechFlow")))
	s.AddProject(testutil.NewTestProject("Mobil Uygulama", testutil.WithClientID(c.ID)))
	s.AddProject(testutil.NewTestProject("Başka Proje"))

	d.PressKey('C')
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "[")
	assert.Contains(t, view, "TechFlow", "active client shown in the header")
	assert.Contains(t, view, "Mobil Uygulama")
	assert.NotContains(t, view, "Başka Proje", "list is scoped to the client")
}

func TestClientList_Filter(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddClient(testutil.NewTestClient("Mehmet", testutil.WithCompany("ACME Inc.")))
	s.AddClient(testutil.NewTestClient("Ayşe", testutil.WithCompany("TechFlow")))

	d.PressKey('C')
	d.PressKey('/')
	d.Type("tech")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "TechFlow")
	assert.NotContains(t, view, "ACME Inc.")
}

func TestClientList_Delete(t *testing.T) {
	d, s, _ := newTestTUI(t)
	c := s.AddClient(testutil.NewTestClient("Silinecek"))

	d.PressKey('C')
	d.PressKey('x')

	_, ok := s.Client(c.ID)
	assert.False(t, ok)
	assert.Contains(t, d.View(), "Deleted")
}

func TestProjectDetail_ToggleTask(t *testing.T) {
	d, s, _ := newTestTUI(t)
	p := s.AddProject(testutil.NewTestProject("Görevli Proje", testutil.WithTasks(
		domain.Task{Title: "Analiz"},
		domain.Task{Title: "Geliştirme"},
	)))

	d.PressKey('P')
	d.PressEnter() // open detail
	d.PressSpace() // toggle first task

	after, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.True(t, after.Tasks[0].Completed)
	assert.Equal(t, 50, after.Progress, "progress re-derived after the toggle")
	assert.Contains(t, d.View(), "[✔]")
}

func TestProposalList_MarkSent(t *testing.T) {
	d, s, _ := newTestTUI(t)
	p := s.AddProposal(testutil.NewTestProposal("Teklif Projesi"))

	d.PressKey('T')
	assert.Contains(t, d.View(), p.Number)

	d.PressKey('s')
	after, ok := s.Proposal(p.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ProposalSent, after.Status)
}

func TestContractList_Sign(t *testing.T) {
	d, s, _ := newTestTUI(t)
	c := s.AddContract(testutil.NewTestContract("Sözleşmeli Proje"))

	d.PressKey('S')
	assert.Contains(t, d.View(), c.Number)

	d.PressKey('g')
	after, ok := s.Contract(c.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ContractSigned, after.Status)
	assert.NotNil(t, after.SignedAt)
}

func TestShowcaseList_ShowsAmounts(t *testing.T) {
	d, s, _ := newTestTUI(t)
	p := s.AddProject(testutil.NewTestProject("Vitrinli Proje"))
	_, err := s.AddShowcase(testutil.NewTestShowcase(p.ID, "Teklif Vitrini", testutil.WithDiscount(5000)))
	require.NoError(t, err)

	d.PressKey('V')
	view := d.View()
	assert.Contains(t, view, "Teklif Vitrini")
	assert.Contains(t, view, "₺95.000")
	assert.Contains(t, view, "Vitrinli Proje")
}

func TestEsc_PopsPushedView(t *testing.T) {
	d, s, _ := newTestTUI(t)
	s.AddClient(testutil.NewTestClient("Müşteri", testutil.WithCompany("Firma AŞ")))

	d.PressKey('C')
	d.PressEnter() // drill into projects
	d.PressEsc()   // back to the client list

	assert.Contains(t, d.View(), "Firma AŞ")
	assert.Contains(t, d.View(), "enter: projects", "client list help is back")
}
