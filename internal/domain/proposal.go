package domain

import "time"

// Proposal is a priced offer sent to a client. Number is assigned once at
// creation (TEK-YYYY-NNN) and never changes afterwards.
type Proposal struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	ClientRef
	ProjectName string         `json:"projectName"`
	Description string         `json:"description,omitempty"`
	Amount      float64        `json:"amount"`
	Status      ProposalStatus `json:"status"`
	ValidUntil  time.Time      `json:"validUntil"`
	Items       []ProposalItem `json:"items,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ProposalItem is a single line item. Total must always equal
// Quantity * UnitPrice; the store re-derives it on every write.
type ProposalItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}
