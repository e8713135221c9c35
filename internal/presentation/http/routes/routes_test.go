package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/container"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/database"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/store"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
	"github.com/luxeestates/luxegate-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewTestLogger()

	db, err := database.NewConnection("sqlite3", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st, err := store.New(db, logger)
	require.NoError(t, err)

	c := container.NewContainer(logger, performance.NewTracker(), st, nil)
	c.StateService.Initialize()
	go c.LeadStream.Run()

	return SetupRoutes(c)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
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
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func captureBody() map[string]any {
	return map[string]any{
		"name":             "Asha",
		"phone":            "9820012345",
		"buyingFor":        "Self",
		"budget":           "₹ 50L - ₹ 80L",
		"interestedConfig": "2 BHK",
		"projectId":        "p1",
	}
}

func TestCatalogListingAlwaysVisible(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []map[string]any `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 3)

	// Summaries never carry gated fields
	_, hasDescription := resp.Projects[0]["description"]
	assert.False(t, hasDescription)
}

func TestCatalogFeaturedFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog?featured=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []map[string]any `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 2)
}

func TestDetailGatedUntilCapture(t *testing.T) {
	router := newTestRouter(t)

	// Locked: 403 with the capture requirement
	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/p1", nil, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var gate struct {
		RequiresCapture bool   `json:"requiresCapture"`
		TargetProjectID string `json:"targetProjectId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gate))
	assert.True(t, gate.RequiresCapture)
	assert.Equal(t, "p1", gate.TargetProjectID)

	// Capture unlocks
	w = doJSON(t, router, http.MethodPost, "/api/v1/capture", captureBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Unlocked: full detail
	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/p1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Project map[string]any `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.NotEmpty(t, detail.Project["description"])
}

func TestDetailUnknownProject(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCaptureRejectsInvalidSubmission(t *testing.T) {
	router := newTestRouter(t)

	body := captureBody()
	body["name"] = ""
	w := doJSON(t, router, http.MethodPost, "/api/v1/capture", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Session stays locked
	w = doJSON(t, router, http.MethodGet, "/api/v1/session", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sess struct {
		Unlocked bool `json:"unlocked"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.False(t, sess.Unlocked)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/leads", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/reset", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	// Wrong password
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{"password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Right password sets the auth cookie
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{"password": config.AdminPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var authCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_auth" {
			authCookie = c
		}
	}
	require.NotNil(t, authCookie)

	// Cookie opens the back office
	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil, authCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalLeads    int `json:"totalLeads"`
		TotalProjects int `json:"totalProjects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 3, stats.TotalProjects)
}

func TestAdminBearerTokenAccepted(t *testing.T) {
	router := newTestRouter(t)

	token, err := security.GenerateAdminToken(config.JWTSecret, config.AdminTokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminResetRestoresFactoryState(t *testing.T) {
	router := newTestRouter(t)

	// Unlock and publish so reset has something to undo
	w := doJSON(t, router, http.MethodPost, "/api/v1/capture", captureBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	token, err := security.GenerateAdminToken(config.JWTSecret, config.AdminTokenTTL)
	require.NoError(t, err)
	authCookie := &http.Cookie{Name: "admin_auth", Value: token}

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/projects", map[string]any{
		"name":     "Reset Target",
		"location": "Jaipur",
	}, authCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/reset", nil, authCookie)
	require.Equal(t, http.StatusOK, w.Code)

	// Catalog is back to the seed and the session is locked again
	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil, nil)
	var resp struct {
		Projects []map[string]any `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 3)

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/p1", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeadsExportCSV(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/capture", captureBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	token, err := security.GenerateAdminToken(config.JWTSecret, config.AdminTokenTTL)
	require.NoError(t, err)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/leads/export", nil, &http.Cookie{Name: "admin_auth", Value: token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Name,Phone,Email,Budget,Config,Date")
	assert.Contains(t, w.Body.String(), "Asha")
}
