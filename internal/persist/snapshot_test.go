package persist_test

import (
	"testing"
	"time"

	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_NextNumber_Format(t *testing.T) {
	s := &persist.Snapshot{}

	assert.Equal(t, "TEK-2024-001", s.NextNumber("TEK", 2024))
	assert.Equal(t, "TEK-2024-002", s.NextNumber("TEK", 2024))
	assert.Equal(t, "SOZ-2024-001", s.NextNumber("SOZ", 2024), "codes count independently")
	assert.Equal(t, "TEK-2025-001", s.NextNumber("TEK", 2025), "years count independently")
}

func TestSnapshot_EnsureCounters_BackfillsFromIssuedNumbers(t *testing.T) {
	s := &persist.Snapshot{
		Proposals: []domain.Proposal{
			{ID: "p1", Number: "TEK-2024-003"},
			{ID: "p2", Number: "TEK-2024-001"},
		},
		Contracts: []domain.Contract{
			{ID: "c1", Number: "SOZ-2024-002"},
		},
	}
	s.EnsureCounters()

	assert.Equal(t, "TEK-2024-004", s.NextNumber("TEK", 2024),
		"counter resumes after the highest issued number")
	assert.Equal(t, "SOZ-2024-003", s.NextNumber("SOZ", 2024))
}

func TestSnapshot_EnsureCounters_IgnoresUnparsableNumbers(t *testing.T) {
	s := &persist.Snapshot{
		Proposals: []domain.Proposal{
			{ID: "p1", Number: ""},
			{ID: "p2", Number: "garbage"},
			{ID: "p3", Number: "TEK-2024-abc"},
		},
	}
	s.EnsureCounters()

	assert.Equal(t, "TEK-2024-001", s.NextNumber("TEK", 2024))
}

func TestDecodeSnapshot_RevivesDates(t *testing.T) {
	created := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	signed := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	in := &persist.Snapshot{
		Clients: []domain.Client{{ID: "client-1", Name: "Mehmet", CreatedAt: created}},
		Contracts: []domain.Contract{{
			ID: "cont-1", Number: "SOZ-2024-001",
			Status: domain.ContractSigned, SignedAt: &signed, CreatedAt: created,
		}},
	}

	raw, err := in.Encode()
	require.NoError(t, err)

	out, err := persist.DecodeSnapshot(raw)
	require.NoError(t, err)

	assert.Equal(t, created, out.Clients[0].CreatedAt)
	require.NotNil(t, out.Contracts[0].SignedAt)
	assert.Equal(t, signed, *out.Contracts[0].SignedAt)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"clients": [`},
		{"wrong shape", `"just a string"`},
		{"no collections", `{"counters": {"TEK-2024": 3}}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := persist.DecodeSnapshot([]byte(tc.raw))
			assert.ErrorIs(t, err, persist.ErrMalformedSnapshot)
		})
	}
}

func TestDecodeSnapshot_SingleCollectionIsEnough(t *testing.T) {
	out, err := persist.DecodeSnapshot([]byte(`{"clients": []}`))
	require.NoError(t, err)
	assert.NotNil(t, out.Counters, "counters are initialized on load")
}

func TestSnapshot_Clone_Detached(t *testing.T) {
	s := persist.DefaultSnapshot()
	c := s.Clone()

	c.Clients[0].Name = "changed"
	c.Projects[0].Tasks[0].Completed = !s.Projects[0].Tasks[0].Completed
	c.Counters["TEK-2024"] = 999

	assert.NotEqual(t, c.Clients[0].Name, s.Clients[0].Name)
	assert.NotEqual(t, c.Projects[0].Tasks[0].Completed, s.Projects[0].Tasks[0].Completed)
	assert.NotEqual(t, 999, s.Counters["TEK-2024"])
}

func TestDefaultSnapshot_CountersMatchSeedNumbers(t *testing.T) {
	s := persist.DefaultSnapshot()

	assert.Equal(t, "TEK-2024-006", s.NextNumber("TEK", 2024),
		"seed holds five proposals for 2024")
	assert.Equal(t, "SOZ-2024-005", s.NextNumber("SOZ", 2024),
		"seed holds four contracts for 2024")
}
