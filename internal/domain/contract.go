package domain

import "time"

// Contract is a signable agreement tied to a project. Number is assigned once
// at creation (SOZ-YYYY-NNN). SignedAt is stamped the first time status
// transitions to signed and is never overwritten.
type Contract struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName,omitempty"`
	ClientRef
	Status    ContractStatus `json:"status"`
	Content   string         `json:"content,omitempty"`
	SignedAt  *time.Time     `json:"signedAt,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
