package usecase

import (
	"context"
	"time"

	"TeamPulse-App/internal/domain/model"
	"TeamPulse-App/internal/domain/service"
)

// DashboardUseCase チームダッシュボードの取得ユースケース
type DashboardUseCase interface {
	// GetTeamDashboard クエリに基づいてダッシュボードデータを取得する
	GetTeamDashboard(ctx context.Context, query *model.DashboardQuery) (*model.TeamDashboardResponse, error)
}

// dashboardUseCaseImpl DashboardUseCaseの実装
type dashboardUseCaseImpl struct {
	analyticsService service.SprintAnalyticsService
}

// NewDashboardUseCase DashboardUseCaseの新しいインスタンスを作成
func NewDashboardUseCase(analyticsService service.SprintAnalyticsService) DashboardUseCase {
	return &dashboardUseCaseImpl{
		analyticsService: analyticsService,
	}
}

// GetTeamDashboard クエリに基づいてダッシュボードデータを取得する
// 基準日には現在日付を使用する（サービス層は基準日を引数に取る純粋関数）
func (u *dashboardUseCaseImpl) GetTeamDashboard(ctx context.Context, query *model.DashboardQuery) (*model.TeamDashboardResponse, error) {
	// item_types省略時のデフォルトを補完する（集計自体はアイテム種別に依存しない）
	query.ItemTypes = query.NormalizedItemTypes()

	response := u.analyticsService.BuildDashboard(query, time.Now())
	return response, nil
}
