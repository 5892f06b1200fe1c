package formatter

import (
	"testing"
	"time"

	"github.com/meanval/meanval/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTRY(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₺0"},
		{"small", 500, "₺500"},
		{"thousands", 45000, "₺45.000"},
		{"grouped", 245000, "₺245.000"},
		{"millions", 1500000, "₺1.500.000"},
		{"fractional", 1234.56, "₺1.234,56"},
		{"single cent", 0.05, "₺0,05"},
		{"whole despite float", 45000.0, "₺45.000"},
		{"negative", -5000, "-₺5.000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTRY(tc.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15.01.2024", FormatDate(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "—", FormatDate(time.Time{}))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))

	old := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20.02.2024", HumanTimestamp(old))
}

func TestRenderProgress(t *testing.T) {
	assert.Contains(t, RenderProgress(0.5, 10), "50%")
	assert.Contains(t, RenderProgress(0.5, 10), "█████░░░░░")
	assert.Contains(t, RenderProgress(0, 4), "░░░░")
	assert.Contains(t, RenderProgress(1, 4), "████")
	assert.Contains(t, RenderProgress(1.7, 4), "100%", "overflow is clamped")
	assert.Contains(t, RenderProgress(-0.5, 4), "  0%")
}

func TestStatusPills_TurkishLabels(t *testing.T) {
	assert.Contains(t, ProjectStatusPill(domain.ProjectPlanning), "Planlama")
	assert.Contains(t, ProjectStatusPill(domain.ProjectInProgress), "Devam Ediyor")
	assert.Contains(t, ProjectStatusPill(domain.ProjectReview), "İncelemede")
	assert.Contains(t, ProjectStatusPill(domain.ProjectCompleted), "Tamamlandı")
	assert.Contains(t, ProjectStatusPill(domain.ProjectOnHold), "Beklemede")

	assert.Contains(t, ClientStatusPill(domain.ClientActive), "Aktif")
	assert.Contains(t, ClientStatusPill(domain.ClientInactive), "Pasif")

	assert.Contains(t, ProposalStatusPill(domain.ProposalDraft), "Taslak")
	assert.Contains(t, ProposalStatusPill(domain.ProposalSent), "Gönderildi")
	assert.Contains(t, ProposalStatusPill(domain.ProposalAccepted), "Kabul Edildi")
	assert.Contains(t, ProposalStatusPill(domain.ProposalRejected), "Reddedildi")

	assert.Contains(t, ContractStatusPill(domain.ContractPendingSignature), "İmza Bekliyor")
	assert.Contains(t, ContractStatusPill(domain.ContractSigned), "İmzalandı")

	assert.Contains(t, ShowcaseStatusPill(domain.ShowcaseViewed), "Görüntülendi")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcd…", PadRight("abcdef", 5))
	assert.Equal(t, "çğü  ", PadRight("çğü", 5), "width counts runes, not bytes")
}
