package handler

import (
	"net/http"

	"TeamPulse-App/internal/domain/model"
	"TeamPulse-App/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler チームダッシュボードAPIのハンドラー
type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

// NewDashboardHandler DashboardHandlerの新しいインスタンスを作成
func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetTeamDashboard GET /api/team-dashboard - チームダッシュボードデータの取得
func (h *DashboardHandler) GetTeamDashboard(c *gin.Context) {
	var query model.DashboardQuery

	// クエリパラメータのバインド（groupingはoneofバリデーション付き）
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"details": err.Error(),
		})
		return
	}

	response, err := h.dashboardUseCase.GetTeamDashboard(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
