package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoliciesHandler_List(t *testing.T) {
	handler := NewPoliciesHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/policies", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp PoliciesResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

	assert.Equal(t, "tag-score", resp.Ranking.Default)
	assert.Equal(t, "concat", resp.Sequencing.Default)

	assert.Contains(t, resp.Ranking.Policies, "tag-popularity")
	assert.Contains(t, resp.Sequencing.Policies, "interleave")
	assert.Contains(t, resp.Sequencing.Policies, "greedy")
}

func TestPoliciesHandler_List_ReflectsConfiguredDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.Sequencing = "greedy"
	handler := NewPoliciesHandler(cfg)

	req := httptest.NewRequest("GET", "/api/v1/policies", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	var resp PoliciesResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

	assert.Equal(t, "greedy", resp.Sequencing.Default)
}
