package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTimeEntry(t *testing.T, engine *gin.Engine, projectID int64, body gin.H) int64 {
	t.Helper()
	body["project_id"] = projectID
	w := performRequest(t, engine, http.MethodPost, "/api/timetracker/time-entries", body)
	require.Equal(t, http.StatusOK, w.Code)
	return int64(decodeBody(t, w)["id"].(float64))
}

func TestTimeEntryEndpoints(t *testing.T) {
	t.Run("create requires project_id and hours", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(t, engine, http.MethodPost, "/api/timetracker/time-entries", gin.H{"description": "no hours"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Project ID and hours are required", decodeBody(t, w)["error"])
	})

	t.Run("list computes a billed amount when a rate is set", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		projectID := createProject(t, engine, clientID, "Website")
		createTimeEntry(t, engine, projectID, gin.H{"hours": 3.0, "rate": 20.0, "description": "Design"})
		createTimeEntry(t, engine, projectID, gin.H{"hours": 2.0, "description": "Meeting"})

		w := performRequest(t, engine, http.MethodGet, "/api/timetracker/time-entries", nil)
		require.Equal(t, http.StatusOK, w.Code)

		entries := decodeBody(t, w)["timeEntries"].([]any)
		require.Len(t, entries, 2)

		byDescription := map[string]map[string]any{}
		for _, e := range entries {
			entry := e.(map[string]any)
			byDescription[entry["description"].(string)] = entry
		}
		assert.Equal(t, 60.0, byDescription["Design"]["amount"])
		assert.NotContains(t, byDescription["Meeting"], "amount")
		assert.Equal(t, "Website", byDescription["Design"]["project_name"])
		assert.Equal(t, "Acme Corp", byDescription["Design"]["client_name"])
	})

	t.Run("list by project", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		website := createProject(t, engine, clientID, "Website")
		branding := createProject(t, engine, clientID, "Branding")
		createTimeEntry(t, engine, website, gin.H{"hours": 1.0})
		createTimeEntry(t, engine, branding, gin.H{"hours": 2.0})

		w := performRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/timetracker/projects/%d/time-entries", website), nil)
		entries := decodeBody(t, w)["timeEntries"].([]any)

		require.Len(t, entries, 1)
		assert.Equal(t, 1.0, entries[0].(map[string]any)["hours"])
	})

	t.Run("update and delete", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		projectID := createProject(t, engine, clientID, "Website")
		id := createTimeEntry(t, engine, projectID, gin.H{"hours": 1.0})

		w := performRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/timetracker/time-entries/%d", id), gin.H{"hours": 4.5, "description": "Revised"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Time entry updated successfully", decodeBody(t, w)["message"])

		w = performRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/timetracker/time-entries/%d", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/timetracker/time-entries/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Time entry not found", decodeBody(t, w)["error"])
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		engine := newTestServer(t)
		clientID := createClient(t, engine, "Acme Corp")
		projectID := createProject(t, engine, clientID, "Website")

		w := performRequest(t, engine, http.MethodPost, "/api/timetracker/time-entries", gin.H{
			"project_id": projectID,
			"hours":      1.0,
			"date":       "31/01/2025",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
