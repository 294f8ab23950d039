package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	crmapp "github.com/labworks/backend/internal/application/crm"
	proposalapp "github.com/labworks/backend/internal/application/proposal"
	timetrackerapp "github.com/labworks/backend/internal/application/timetracker"
	"github.com/labworks/backend/internal/infrastructure/persistence"
	"github.com/labworks/backend/internal/infrastructure/printing"
	"github.com/labworks/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
)

// stubRenderer satisfies printing.PDFRenderer without a browser
type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	return &printing.RenderResult{PDFData: []byte("%PDF-1.4 stub")}, nil
}

func (stubRenderer) Close() error { return nil }

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	clientRepo := persistence.NewGormClientRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	noteRepo := persistence.NewGormContactNoteRepository(db.DB)
	proposalRepo := persistence.NewGormProposalRepository(db.DB)
	entryRepo := persistence.NewGormTimeEntryRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	templates, err := printing.NewTemplateEngine()
	require.NoError(t, err)
	renderer := stubRenderer{}

	engine := gin.New()
	systemHandler := NewSystemHandler(db, "1.0.0")
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(systemHandler)
	r.Register(NewClientHandler(crmapp.NewClientService(clientRepo)))
	r.Register(NewProjectHandler(crmapp.NewProjectService(projectRepo)))
	r.Register(NewNoteHandler(crmapp.NewContactNoteService(noteRepo)))
	r.Register(NewProposalHandler(proposalapp.NewService(proposalRepo, templates, renderer)))
	r.Register(NewTimeEntryHandler(timetrackerapp.NewTimeEntryService(entryRepo)))
	r.Register(NewInvoiceHandler(timetrackerapp.NewInvoiceService(invoiceRepo, entryRepo, projectRepo, templates, renderer)))
	r.Setup()

	return engine
}

func performRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createClient inserts a client through the API and returns its id
func createClient(t *testing.T, engine *gin.Engine, name string) int64 {
	t.Helper()
	w := performRequest(t, engine, http.MethodPost, "/api/crm/clients", gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return int64(decodeBody(t, w)["id"].(float64))
}

// createProject inserts a project through the API and returns its id
func createProject(t *testing.T, engine *gin.Engine, clientID int64, name string) int64 {
	t.Helper()
	w := performRequest(t, engine, http.MethodPost, "/api/crm/projects", gin.H{"client_id": clientID, "name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return int64(decodeBody(t, w)["id"].(float64))
}
