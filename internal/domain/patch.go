package domain

import "time"

// Typed update commands. Each patch struct contains exactly the mutable
// subset of its entity: a nil field leaves the stored value unchanged.
// Protected fields (id, number, createdAt, derived aggregates) are not
// expressible here, so "silently discard" is a compile-time guarantee
// rather than a runtime guard. Unknown JSON keys (including "id" and
// "number" from remote payloads) are dropped by the decoder.

type ClientPatch struct {
	Name    *string       `json:"name,omitempty"`
	Email   *string       `json:"email,omitempty"`
	Phone   *string       `json:"phone,omitempty"`
	Company *string       `json:"company,omitempty"`
	Address *string       `json:"address,omitempty"`
	Status  *ClientStatus `json:"status,omitempty"`
}

type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	ClientID    *string        `json:"clientId,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Budget      *float64       `json:"budget,omitempty"`
	Progress    *int           `json:"progress,omitempty"`
	Tasks       *[]Task        `json:"tasks,omitempty"`
}

type ProposalPatch struct {
	ClientID    *string         `json:"clientId,omitempty"`
	ProjectName *string         `json:"projectName,omitempty"`
	Description *string         `json:"description,omitempty"`
	Amount      *float64        `json:"amount,omitempty"`
	Status      *ProposalStatus `json:"status,omitempty"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	Items       *[]ProposalItem `json:"items,omitempty"`
}

type ContractPatch struct {
	ProjectID   *string         `json:"projectId,omitempty"`
	ProjectName *string         `json:"projectName,omitempty"`
	ClientID    *string         `json:"clientId,omitempty"`
	Status      *ContractStatus `json:"status,omitempty"`
	Content     *string         `json:"content,omitempty"`
}

type ShowcasePatch struct {
	Title        *string         `json:"title,omitempty"`
	Introduction *string         `json:"introduction,omitempty"`
	Items        *[]ShowcaseItem `json:"items,omitempty"`
	Discount     *float64        `json:"discount,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	Status       *ShowcaseStatus `json:"status,omitempty"`
	SentAt       *time.Time      `json:"sentAt,omitempty"`
	ViewedAt     *time.Time      `json:"viewedAt,omitempty"`
	RespondedAt  *time.Time      `json:"respondedAt,omitempty"`
}
