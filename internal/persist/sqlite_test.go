package persist_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSlotStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meanval.db")
	slot, err := persist.OpenSQLite(path, "")
	require.NoError(t, err)
	defer slot.Close()

	ctx := context.Background()

	loaded, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "fresh slot holds nothing")

	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	in := &persist.Snapshot{
		Clients: []domain.Client{{ID: "client-1", Name: "Ali", Company: "Global Union", CreatedAt: created}},
		Projects: []domain.Project{{
			ID: "proj-1", Name: "Web Sitesi",
			ClientRef: domain.ClientRef{ClientID: "client-1", ClientName: "Global Union"},
			Status:    domain.ProjectReview,
			StartDate: created, EndDate: created.AddDate(0, 3, 0),
			Budget: 45000, CreatedAt: created,
		}},
	}
	require.NoError(t, slot.Save(ctx, in))

	out, err := slot.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Clients, out.Clients)
	assert.Equal(t, in.Projects, out.Projects)
}

func TestSQLiteSlotStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meanval.db")
	slot, err := persist.OpenSQLite(path, "")
	require.NoError(t, err)
	defer slot.Close()

	ctx := context.Background()
	require.NoError(t, slot.Save(ctx, &persist.Snapshot{Clients: []domain.Client{{ID: "a"}}}))
	require.NoError(t, slot.Save(ctx, &persist.Snapshot{Clients: []domain.Client{{ID: "b"}, {ID: "c"}}}))

	out, err := slot.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out.Clients, 2)
	assert.Equal(t, "b", out.Clients[0].ID)
}

func TestSQLiteSlotStore_NamespacesIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	first, err := persist.OpenSQLite(path, "first")
	require.NoError(t, err)
	defer first.Close()

	ctx := context.Background()
	require.NoError(t, first.Save(ctx, &persist.Snapshot{Clients: []domain.Client{{ID: "a"}}}))

	second, err := persist.OpenSQLite(path, "second")
	require.NoError(t, err)
	defer second.Close()

	out, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, out, "other namespaces do not see our document")
}
