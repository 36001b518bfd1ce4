package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"TeamPulse-App/internal/domain/model"
	"TeamPulse-App/internal/domain/service"
	"TeamPulse-App/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRouter テスト用のルーターをセットアップする（診断用ストアなし）
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	analyticsService := service.NewSprintAnalyticsService()
	dashboardUseCase := usecase.NewDashboardUseCase(analyticsService)

	greetingHandler := NewGreetingHandler()
	dashboardHandler := NewDashboardHandler(dashboardUseCase)
	diagnosticsHandler := NewDiagnosticsHandler(nil)

	return NewRouter(greetingHandler, dashboardHandler, diagnosticsHandler)
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetTeamDashboard_DefaultQuery(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "/api/team-dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TeamDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// デフォルトのチーム名が反映される
	assert.Equal(t, "Alpha Team", resp.TeamName)
	assert.Len(t, resp.KPIs, 6)
	assert.Len(t, resp.Velocity, 8)
	assert.Len(t, resp.CommitmentVsCompletion, 8)
	assert.Len(t, resp.RolloverTrend, 8)
	assert.Len(t, resp.SprintRows, 8)
	// 先頭は最新スプリント（最古のスプリントが「Sprint 8」のラベルを持つ）
	assert.Equal(t, "Sprint 1", resp.SprintRows[0].Sprint)
	assert.Equal(t, "Sprint 8", resp.SprintRows[7].Sprint)
}

func TestGetTeamDashboard_WithParameters(t *testing.T) {
	router := setupTestRouter()

	query := url.Values{}
	query.Set("team_id", "team-42")
	query.Set("team_name", "Bravo Team")
	query.Set("grouping", "By week")
	query.Set("include_done_only", "true")
	query.Add("item_types", "Stories")
	query.Add("item_types", "Bugs")

	w := performRequest(router, "/api/team-dashboard?"+query.Encode())
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TeamDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Bravo Team", resp.TeamName)
	// include_done_only=true ではベースポイントが下がる
	assert.Equal(t, 35.0, resp.SprintRows[7].Committed)
}

func TestGetTeamDashboard_InvalidGrouping(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "/api/team-dashboard?grouping=Invalid")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_parameter", body["error"])
	assert.NotContains(t, body, "sprint_rows")
}

func TestGetTeamDashboard_AllowedGroupings(t *testing.T) {
	router := setupTestRouter()

	for _, grouping := range []string{"By sprint", "By week", "By month"} {
		w := performRequest(router, "/api/team-dashboard?grouping="+url.QueryEscape(grouping))
		assert.Equal(t, http.StatusOK, w.Code, "grouping %q", grouping)
	}
}

func TestGreetingEndpoints(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello from FastAPI Backend!"}`, w.Body.String())

	w = performRequest(router, "/api/hello")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello from the backend API!"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "/api/hello")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// クライアント指定のIDはそのまま返す
	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "test-request-id", w.Header().Get("X-Request-ID"))
}
