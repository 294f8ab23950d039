package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProposal(t *testing.T, engine *gin.Engine, clientID int64, title string) int64 {
	t.Helper()
	w := performRequest(t, engine, http.MethodPost, "/api/proposals/proposals", gin.H{
		"client_id":    clientID,
		"title":        title,
		"scope":        "Build the thing",
		"total_amount": 15000.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	return int64(decodeBody(t, w)["id"].(float64))
}

func TestProposalEndpoints(t *testing.T) {
	t.Run("create requires client_id and title", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(t, engine, http.MethodPost, "/api/proposals/proposals", gin.H{"scope": "vague"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Client ID and title are required", decodeBody(t, w)["error"])
	})

	t.Run("new proposals start as drafts", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		id := createProposal(t, engine, clientID, "Website Redesign")

		w := performRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/proposals/proposals/%d", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		p := decodeBody(t, w)["proposal"].(map[string]any)
		assert.Equal(t, "draft", p["status"])
		assert.Equal(t, "Website Redesign", p["title"])
	})

	t.Run("list joins the client name", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		createProposal(t, engine, clientID, "Website Redesign")

		w := performRequest(t, engine, http.MethodGet, "/api/proposals/proposals", nil)
		proposals := decodeBody(t, w)["proposals"].([]any)

		require.Len(t, proposals, 1)
		assert.Equal(t, "Acme Corp", proposals[0].(map[string]any)["client_name"])
	})

	t.Run("update requires a title", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		id := createProposal(t, engine, clientID, "Website Redesign")

		w := performRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/proposals/proposals/%d", id), gin.H{"status": "sent"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required", decodeBody(t, w)["error"])
	})

	t.Run("pdf export returns a downloadable document", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		id := createProposal(t, engine, clientID, "Website Redesign")

		w := performRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/proposals/proposals/%d/pdf", id), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, fmt.Sprintf("attachment; filename=proposal-%d.pdf", id), w.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, w.Body.Bytes())
	})

	t.Run("pdf export for unknown proposal returns json 404", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(t, engine, http.MethodGet, "/api/proposals/proposals/42/pdf", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Proposal not found", decodeBody(t, w)["error"])
	})
}
