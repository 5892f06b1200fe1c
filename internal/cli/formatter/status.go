package formatter

import (
	"strings"

	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProjectStatusLabel returns the display label for a project status.
func ProjectStatusLabel(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectPlanning:
		return "Planlama"
	case domain.ProjectInProgress:
		return "Devam Ediyor"
	case domain.ProjectReview:
		return "İncelemede"
	case domain.ProjectCompleted:
		return "Tamamlandı"
	case domain.ProjectOnHold:
		return "Beklemede"
	default:
		return string(s)
	}
}

// ProjectStatusStyle returns the accent style for a project status.
func ProjectStatusStyle(s domain.ProjectStatus) lipgloss.Style {
	switch s {
	case domain.ProjectPlanning:
		return StyleBlue
	case domain.ProjectInProgress:
		return StyleGreen
	case domain.ProjectReview:
		return StyleYellow
	case domain.ProjectCompleted:
		return StyleDim
	case domain.ProjectOnHold:
		return StyleRed
	default:
		return StyleDim
	}
}

// ProjectStatusPill returns a colored status indicator for a project.
func ProjectStatusPill(s domain.ProjectStatus) string {
	return ProjectStatusStyle(s).Render("● " + ProjectStatusLabel(s))
}

// ClientStatusPill returns a colored status indicator for a client.
func ClientStatusPill(s domain.ClientStatus) string {
	switch s {
	case domain.ClientActive:
		return StyleGreen.Render("● Aktif")
	case domain.ClientInactive:
		return StyleDim.Render("○ Pasif")
	default:
		return StyleDim.Render(string(s))
	}
}

// ProposalStatusPill returns a colored status indicator for a proposal.
func ProposalStatusPill(s domain.ProposalStatus) string {
	switch s {
	case domain.ProposalDraft:
		return StyleDim.Render("○ Taslak")
	case domain.ProposalSent:
		return StyleBlue.Render("● Gönderildi")
	case domain.ProposalAccepted:
		return StyleGreen.Render("✔ Kabul Edildi")
	case domain.ProposalRejected:
		return StyleRed.Render("✖ Reddedildi")
	default:
		return StyleDim.Render(string(s))
	}
}

// ContractStatusPill returns a colored status indicator for a contract.
func ContractStatusPill(s domain.ContractStatus) string {
	switch s {
	case domain.ContractDraft:
		return StyleDim.Render("○ Taslak")
	case domain.ContractPendingSignature:
		return StyleYellow.Render("● İmza Bekliyor")
	case domain.ContractSigned:
		return StyleGreen.Render("✔ İmzalandı")
	default:
		return StyleDim.Render(string(s))
	}
}

// ShowcaseStatusPill returns a colored status indicator for a showcase.
func ShowcaseStatusPill(s domain.ShowcaseStatus) string {
	switch s {
	case domain.ShowcaseDraft:
		return StyleDim.Render("○ Taslak")
	case domain.ShowcaseSent:
		return StyleBlue.Render("● Gönderildi")
	case domain.ShowcaseViewed:
		return StyleYellow.Render("● Görüntülendi")
	case domain.ShowcaseAccepted:
		return StyleGreen.Render("✔ Kabul Edildi")
	case domain.ShowcaseRejected:
		return StyleRed.Render("✖ Reddedildi")
	default:
		return StyleDim.Render(string(s))
	}
}

// TruncID returns the first 12 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 12 {
		id = id[:12]
	}
	return StyleDim.Render(id)
}

// PadRight pads a string to a minimum width, truncating if needed.
func PadRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
