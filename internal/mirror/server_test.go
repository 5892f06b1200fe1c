package mirror

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	srv := NewServer(persist.NewRedisSlotStore(client, ""), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, mr
}

type testEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

func doRequest(t *testing.T, method, url string, body any) (int, testEnvelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env testEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestMirror_ListClients_SeedsOnFirstUse(t *testing.T) {
	ts, mr := newTestServer(t)

	code, env := doRequest(t, http.MethodGet, ts.URL+"/api/clients", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Len(t, decodeData[[]domain.Client](t, env), 5)

	assert.True(t, mr.Exists(persist.RedisKey), "first read writes the seed document")
}

func TestMirror_ListClients_StatusFilter(t *testing.T) {
	ts, _ := newTestServer(t)

	_, env := doRequest(t, http.MethodGet, ts.URL+"/api/clients?status=inactive", nil)
	clients := decodeData[[]domain.Client](t, env)
	require.Len(t, clients, 1)
	assert.Equal(t, "CodeCraft", clients[0].Company)
}

func TestMirror_GetClient(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodGet, ts.URL+"/api/clients/client-1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ACME Inc.", decodeData[domain.Client](t, env).Company)

	code, env = doRequest(t, http.MethodGet, ts.URL+"/api/clients/client-404", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "client not found", env.Error)
}

func TestMirror_CreateClient_DiscardsProtectedFields(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPost, ts.URL+"/api/clients", map[string]any{
		"id":            "client-hijack",
		"name":          "Yeni Müşteri",
		"company":       "Startup AŞ",
		"totalProjects": 42,
		"totalRevenue":  1000000,
	})
	require.Equal(t, http.StatusCreated, code)

	c := decodeData[domain.Client](t, env)
	assert.NotEqual(t, "client-hijack", c.ID, "server assigns the id")
	assert.Contains(t, c.ID, "client-")
	assert.Zero(t, c.TotalProjects, "payload aggregates are discarded")
	assert.Zero(t, c.TotalRevenue)
	assert.Equal(t, domain.ClientActive, c.Status)
}

func TestMirror_CreateClient_UniqueIDsWithinMillisecond(t *testing.T) {
	ts, _ := newTestServer(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		code, env := doRequest(t, http.MethodPost, ts.URL+"/api/clients", map[string]any{
			"name": fmt.Sprintf("Müşteri %d", i),
		})
		require.Equal(t, http.StatusCreated, code)
		id := decodeData[domain.Client](t, env).ID
		assert.False(t, seen[id], "id %s issued twice by sequential creates", id)
		seen[id] = true
	}
}

func TestMirror_UpdateClient_PatchSemantics(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPut, ts.URL+"/api/clients/client-1", map[string]any{
		"email": "yeni@acmeinc.com",
	})
	require.Equal(t, http.StatusOK, code)

	c := decodeData[domain.Client](t, env)
	assert.Equal(t, "yeni@acmeinc.com", c.Email)
	assert.Equal(t, "Mehmet Kaya", c.Name, "unpatched fields survive")
	assert.Equal(t, "ACME Inc.", c.Company)
}

func TestMirror_DeleteClient(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodDelete, ts.URL+"/api/clients/client-1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, "client deleted", env.Message)

	code, _ = doRequest(t, http.MethodGet, ts.URL+"/api/clients/client-1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMirror_ListProjects_ClientFilter(t *testing.T) {
	ts, _ := newTestServer(t)

	_, env := doRequest(t, http.MethodGet, ts.URL+"/api/projects?clientId=client-1", nil)
	projects := decodeData[[]domain.Project](t, env)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, "client-1", p.ClientID)
	}
}

func TestMirror_CreateProject_ResolvesRefAndRecomputesClient(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"name":     "Yeni Proje",
		"clientId": "client-4",
		"budget":   50000,
	})
	require.Equal(t, http.StatusCreated, code)

	p := decodeData[domain.Project](t, env)
	assert.Equal(t, "CodeCraft", p.ClientName, "cached name resolved from the client")
	assert.Equal(t, domain.ProjectPlanning, p.Status)

	_, env = doRequest(t, http.MethodGet, ts.URL+"/api/clients/client-4", nil)
	c := decodeData[domain.Client](t, env)
	assert.Equal(t, 1, c.TotalProjects)
	assert.Equal(t, 50000.0, c.TotalRevenue)
}

func TestMirror_CreateProposal_AssignsNumberAndAmount(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPost, ts.URL+"/api/proposals", map[string]any{
		"number":      "TEK-9999-999",
		"projectName": "Yeni Teklif",
		"clientId":    "client-2",
		"amount":      1,
		"items": []map[string]any{
			{"description": "Tasarım", "quantity": 1, "unitPrice": 15000},
			{"description": "Geliştirme", "quantity": 2, "unitPrice": 20000},
		},
	})
	require.Equal(t, http.StatusCreated, code)

	p := decodeData[domain.Proposal](t, env)
	assert.Equal(t, fmt.Sprintf("TEK-%d-001", time.Now().UTC().Year()), p.Number,
		"number comes from the allocator, not the payload")
	assert.Equal(t, 55000.0, p.Amount, "amount re-derived from the items")
	assert.Equal(t, 40000.0, p.Items[1].Total)
	assert.NotEmpty(t, p.Items[0].ID)
}

func TestMirror_UpdateProposal_EmptyItemsZeroTheAmount(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPut, ts.URL+"/api/proposals/prop-1", map[string]any{
		"items": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, code)

	p := decodeData[domain.Proposal](t, env)
	assert.Empty(t, p.Items)
	assert.Zero(t, p.Amount, "clearing the items clears the derived amount")
}

func TestMirror_CreateContract_NumberAndUnsigned(t *testing.T) {
	ts, _ := newTestServer(t)

	code, env := doRequest(t, http.MethodPost, ts.URL+"/api/contracts", map[string]any{
		"projectId":   "proj-1",
		"projectName": "E-Ticaret Platformu",
		"clientId":    "client-1",
		"signedAt":    "2024-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code)

	c := decodeData[domain.Contract](t, env)
	assert.Equal(t, fmt.Sprintf("SOZ-%d-001", time.Now().UTC().Year()), c.Number)
	assert.Nil(t, c.SignedAt, "a new contract starts unsigned")
	assert.Equal(t, domain.ContractDraft, c.Status)
}

func TestMirror_SignContract_StampsOnce(t *testing.T) {
	ts, _ := newTestServer(t)

	// cont-4 is the seed's pending contract.
	code, env := doRequest(t, http.MethodPut, ts.URL+"/api/contracts/cont-4", map[string]any{
		"status": "signed",
	})
	require.Equal(t, http.StatusOK, code)
	first := decodeData[domain.Contract](t, env)
	require.NotNil(t, first.SignedAt)

	_, env = doRequest(t, http.MethodPut, ts.URL+"/api/contracts/cont-4", map[string]any{
		"status": "draft",
	})
	_, env = doRequest(t, http.MethodPut, ts.URL+"/api/contracts/cont-4", map[string]any{
		"status": "signed",
	})
	second := decodeData[domain.Contract](t, env)
	require.NotNil(t, second.SignedAt)
	assert.Equal(t, *first.SignedAt, *second.SignedAt)
}

func TestMirror_InvalidBody(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/clients", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMirror_RedisDown_ReadsServeSeedWritesRefused(t *testing.T) {
	ts, mr := newTestServer(t)
	mr.Close()

	code, env := doRequest(t, http.MethodGet, ts.URL+"/api/clients", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeData[[]domain.Client](t, env), 5, "reads fall back to seed data")

	code, env = doRequest(t, http.MethodPost, ts.URL+"/api/clients", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, env.Success)
	assert.Equal(t, "database not available", env.Error)

	code, _ = doRequest(t, http.MethodPut, ts.URL+"/api/clients/client-1", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = doRequest(t, http.MethodDelete, ts.URL+"/api/clients/client-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
