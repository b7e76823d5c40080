package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/engine"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/store"
)

func newTestServer(t *testing.T, st *store.Store) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(engine.New(), st, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postAnalyze(t *testing.T, srv *httptest.Server, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/analyze", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postAnalyze(t, srv, map[string]string{
		"sourceCode": "contract C {\n    uint public value;\n}",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Results []model.Finding `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, "state-visibility", out.Results[0].RuleID)
}

func TestAnalyzeEndpointAlwaysReturnsResults(t *testing.T) {
	srv := newTestServer(t, nil)

	// source with no contract declaration still yields a finding sequence
	resp := postAnalyze(t, srv, map[string]string{"sourceCode": "not solidity at all"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Results []model.Finding `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, model.RuleSyntax, out.Results[0].RuleID)
	assert.Equal(t, model.SeverityError, out.Results[0].Severity)
}

func TestAnalyzeEndpointMissingSource(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postAnalyze(t, srv, map[string]string{"userId": "alice"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	r, err := http.Post(srv.URL+"/api/analyze", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer r.Body.Close()
	assert.Equal(t, http.StatusBadRequest, r.StatusCode)
}

func TestHistoryEndpoint(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.Save("alice", "contract A {}", []model.Finding{
		{RuleID: "analysis-complete", Severity: model.SeverityInfo, Message: "No issues found", Line: 1, Column: 1},
	})
	require.NoError(t, err)

	srv := newTestServer(t, st)

	resp, err := http.Get(srv.URL + "/api/history?userId=alice")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		History []store.Record `json:"history"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.History, 1)
	assert.Equal(t, "alice", out.History[0].UserID)
}

func TestHistoryEndpointRequiresUser(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	srv := newTestServer(t, st)

	resp, err := http.Get(srv.URL + "/api/history")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryEndpointWithoutStore(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, err := http.Get(srv.URL + "/api/history?userId=alice")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
