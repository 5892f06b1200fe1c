package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/meanval/meanval/internal/domain"
)

// Snapshot is the aggregate document written to the durable slot: all five
// collections plus the document-number allocator state. Time fields are
// RFC3339 strings on the wire and revive to time.Time on load.
type Snapshot struct {
	Clients   []domain.Client   `json:"clients"`
	Projects  []domain.Project  `json:"projects"`
	Proposals []domain.Proposal `json:"proposals"`
	Contracts []domain.Contract `json:"contracts"`
	Showcases []domain.Showcase `json:"showcases"`

	// Counters holds the highest issued sequence per "CODE-YYYY" key.
	// Monotonic: deleting the highest-numbered record does not release
	// its number for reuse.
	Counters map[string]int `json:"counters,omitempty"`
}

// SlotStore is the durable boundary for the aggregate document.
// Load returns (nil, nil) when the slot exists but holds nothing yet.
type SlotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// DefaultSnapshot returns the built-in seed dataset with counter state
// derived from the seeded document numbers.
func DefaultSnapshot() *Snapshot {
	s := &Snapshot{
		Clients:   domain.SeedClients(),
		Projects:  domain.SeedProjects(),
		Proposals: domain.SeedProposals(),
		Contracts: domain.SeedContracts(),
		Showcases: domain.SeedShowcases(),
	}
	s.EnsureCounters()
	return s
}

// NextNumber issues the next document number for the given code and year,
// e.g. NextNumber("TEK", 2024) -> "TEK-2024-006". The counter only moves
// forward, so numbers are never reissued after a delete.
func (s *Snapshot) NextNumber(code string, year int) string {
	if s.Counters == nil {
		s.Counters = make(map[string]int)
	}
	key := fmt.Sprintf("%s-%d", code, year)
	s.Counters[key]++
	return fmt.Sprintf("%s-%03d", key, s.Counters[key])
}

// EnsureCounters backfills allocator state from collection contents for
// snapshots written before counters existed. Each counter is raised to the
// highest sequence found among the issued numbers for its code and year.
func (s *Snapshot) EnsureCounters() {
	if s.Counters == nil {
		s.Counters = make(map[string]int)
	}
	for _, p := range s.Proposals {
		s.raiseCounter(p.Number)
	}
	for _, c := range s.Contracts {
		s.raiseCounter(c.Number)
	}
}

func (s *Snapshot) raiseCounter(number string) {
	// CODE-YYYY-NNN
	i := strings.LastIndex(number, "-")
	if i <= 0 {
		return
	}
	seq, err := strconv.Atoi(number[i+1:])
	if err != nil {
		return
	}
	key := number[:i]
	if seq > s.Counters[key] {
		s.Counters[key] = seq
	}
}

// Clone returns a deep copy, detached from the live collections so it can
// be written out after the store lock is released.
func (s *Snapshot) Clone() *Snapshot {
	raw, err := json.Marshal(s)
	if err != nil {
		return &Snapshot{}
	}
	var out Snapshot
	if err := json.Unmarshal(raw, &out); err != nil {
		return &Snapshot{}
	}
	if out.Counters == nil && s.Counters != nil {
		out.Counters = make(map[string]int)
	}
	return &out
}

// Encode serializes the snapshot for storage.
func (s *Snapshot) Encode() ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return raw, nil
}

// DecodeSnapshot parses a stored document and revives its date fields.
// A document that parses but carries none of the five collections is
// reported as malformed.
func DecodeSnapshot(raw []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if s.Clients == nil && s.Projects == nil && s.Proposals == nil && s.Contracts == nil && s.Showcases == nil {
		return nil, fmt.Errorf("%w: no collections present", ErrMalformedSnapshot)
	}
	s.EnsureCounters()
	return &s, nil
}
