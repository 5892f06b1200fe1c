package domain

// ClientRef is a cached reference to a client, embedded in projects,
// proposals and contracts. ClientName is a snapshot of the client's company
// taken at write time; it is NOT re-synchronized when the client is edited
// later. Readers must treat it as possibly stale and use
// Store.ReconcileClientRefs after renaming a client if they care.
type ClientRef struct {
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName,omitempty"`
}

// Refresh re-snapshots the cached name from the given client.
// It is a no-op when the reference points at a different client.
func (r *ClientRef) Refresh(c *Client) {
	if c != nil && r.ClientID == c.ID {
		r.ClientName = c.Company
	}
}
