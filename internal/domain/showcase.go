package domain

import "time"

// Showcase is a presentation of deliverables for a single project. At most
// one showcase exists per project. TotalAmount and FinalAmount are derived:
// TotalAmount is the sum of item quantity*unitPrice, FinalAmount is
// TotalAmount minus Discount. The store re-derives both on every write.
type Showcase struct {
	ID           string         `json:"id"`
	ProjectID    string         `json:"projectId"`
	Title        string         `json:"title"`
	Introduction string         `json:"introduction"`
	Items        []ShowcaseItem `json:"items,omitempty"`
	TotalAmount  float64        `json:"totalAmount"`
	Discount     float64        `json:"discount,omitempty"`
	FinalAmount  float64        `json:"finalAmount"`
	Notes        string         `json:"notes,omitempty"`
	Status       ShowcaseStatus `json:"status"`
	SentAt       *time.Time     `json:"sentAt,omitempty"`
	ViewedAt     *time.Time     `json:"viewedAt,omitempty"`
	RespondedAt  *time.Time     `json:"respondedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type ShowcaseItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Quantity    float64      `json:"quantity"`
	UnitPrice   float64      `json:"unitPrice"`
	Category    ItemCategory `json:"category"`
}

// ItemsTotal sums quantity*unitPrice over all items.
func (s *Showcase) ItemsTotal() float64 {
	var sum float64
	for _, it := range s.Items {
		sum += it.Quantity * it.UnitPrice
	}
	return sum
}
