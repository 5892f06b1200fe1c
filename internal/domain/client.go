package domain

import "time"

// Client is a customer of the agency. TotalProjects and TotalRevenue are
// derived aggregates recomputed by the store on every project mutation.
type Client struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Company       string       `json:"company"`
	Address       string       `json:"address,omitempty"`
	Status        ClientStatus `json:"status"`
	TotalProjects int          `json:"totalProjects"`
	TotalRevenue  float64      `json:"totalRevenue"`
	CreatedAt     time.Time    `json:"createdAt"`
}
