package service

import (
	"fmt"
	"math"
	"slices"
	"time"

	"TeamPulse-App/internal/domain/model"
)

const (
	sprintCount     = 8  // 生成するスプリント数
	sprintDays      = 14 // スプリントは2週間固定
	storiesBaseline = 12 // バグ比率の分母に使う1スプリントあたりのストーリー数
)

// SprintAnalyticsService スプリント分析データを合成するサービス
// 外部のワークマネジメントシステムには接続せず、入力パラメータと基準日から
// 決定的にデモデータを生成する
type SprintAnalyticsService interface {
	// BuildDashboard クエリと基準日からダッシュボード全体のデータを構築する
	BuildDashboard(query *model.DashboardQuery, today time.Time) *model.TeamDashboardResponse
}

// sprintAnalyticsServiceImpl SprintAnalyticsServiceの実装
type sprintAnalyticsServiceImpl struct{}

// NewSprintAnalyticsService SprintAnalyticsServiceの新しいインスタンスを作成
func NewSprintAnalyticsService() SprintAnalyticsService {
	return &sprintAnalyticsServiceImpl{}
}

// BuildDashboard クエリと基準日からダッシュボード全体のデータを構築する
func (s *sprintAnalyticsServiceImpl) BuildDashboard(query *model.DashboardQuery, today time.Time) *model.TeamDashboardResponse {
	basePoints := 35.0
	if query.IncludeDoneOnly {
		basePoints = 30.0
	}

	velocity := make([]model.VelocityPoint, 0, sprintCount)
	commitVs := make([]model.CommitmentPoint, 0, sprintCount)
	rolloverTrend := make([]model.RolloverPoint, 0, sprintCount)
	rows := make([]model.SprintRow, 0, sprintCount)

	// スプリントは2週間、古い順に生成して最後に新しい順へ並べ替える
	for i := 0; i < sprintCount; i++ {
		idx := sprintCount - i
		sprintName := fmt.Sprintf("Sprint %d", idx)
		start := today.AddDate(0, 0, -(sprintCount-i)*sprintDays)
		end := start.AddDate(0, 0, sprintDays-1)

		committed := basePoints + float64(i%3)*5 + 5
		completed := math.Max(0, committed-float64(i%4)*4+float64(i%2)*2)
		completed = round1(math.Min(committed+3, completed))
		rollover := math.Max(0, round1(committed-completed))

		percent := 0.0
		rollPercent := 0.0
		if committed != 0 {
			percent = round1(100 * completed / committed)
			rollPercent = round1(100 * rollover / committed)
		}

		dor := round1(80 + float64(i%5)*3 - float64(i%2))
		bugsCreated := 5 + (i%4)*2
		reopened := i % 3

		velocity = append(velocity, model.VelocityPoint{
			Key:       sprintName,
			Start:     formatDate(start),
			End:       formatDate(end),
			Committed: committed,
			Completed: completed,
		})
		commitVs = append(commitVs, model.CommitmentPoint{
			Sprint:    sprintName,
			Committed: committed,
			Completed: completed,
			Rollover:  rollover,
			Percent:   percent,
		})
		rolloverTrend = append(rolloverTrend, model.RolloverPoint{
			Sprint:    sprintName,
			Percent:   rollPercent,
			Committed: committed,
			Rolled:    rollover,
		})
		rows = append(rows, model.SprintRow{
			Sprint:               sprintName,
			Start:                formatDate(start),
			End:                  formatDate(end),
			Committed:            committed,
			Completed:            completed,
			CompletionPercent:    percent,
			RolloverPoints:       rollover,
			RolloverPercent:      rollPercent,
			DorCompliancePercent: dor,
			BugsCreated:          bugsCreated,
			ItemsReopened:        reopened,
		})
	}

	kpis := buildKPIs(velocity, commitVs, rows)

	// スコープ変更のサマリーは現状固定値（実データ連携が入るまでのプレースホルダー）
	scope := model.ScopeSummary{
		AvgAdded:      3.2,
		AvgRemoved:    1.4,
		AvgNetPercent: 6.5,
	}

	// 最新スプリントを先頭にする
	slices.Reverse(velocity)
	slices.Reverse(commitVs)
	slices.Reverse(rolloverTrend)
	slices.Reverse(rows)

	return &model.TeamDashboardResponse{
		TeamName:               query.TeamName,
		KPIs:                   kpis,
		Velocity:               velocity,
		CommitmentVsCompletion: commitVs,
		RolloverTrend:          rolloverTrend,
		ScopeChange:            scope,
		SprintRows:             rows,
	}
}

// buildKPIs 生成済みの系列からサマリーKPIを集計する
func buildKPIs(velocity []model.VelocityPoint, commitVs []model.CommitmentPoint, rows []model.SprintRow) []model.KPI {
	var sumCompleted, sumCommitted, sumRollover, sumDor float64
	var sumBugs int

	for _, v := range velocity {
		sumCompleted += v.Completed
	}
	for _, c := range commitVs {
		sumCommitted += c.Committed
		sumRollover += c.Rollover
	}
	for _, r := range rows {
		sumDor += r.DorCompliancePercent
		sumBugs += r.BugsCreated
	}

	n := float64(len(velocity))
	avgVelocity := round1(sumCompleted / n)
	avgThroughput := round1(n * 10 / n) // デモ用プレースホルダー
	commitmentCompletion := round1(sumCompleted / sumCommitted * 100)
	rolloverRate := round1(sumRollover / sumCommitted * 100)
	dorCompliance := round1(sumDor / float64(len(rows)))
	bugRatio := round2(float64(sumBugs) / float64(max(1, len(rows)*storiesBaseline)))

	return []model.KPI{
		{Label: "Velocity", Value: avgVelocity, Delta: floatPtr(1.2), Help: strPtr("Average story points completed per sprint in the selected range.")},
		{Label: "Throughput", Value: avgThroughput, Delta: floatPtr(-0.5), Help: strPtr("Number of items completed per sprint in the selected range.")},
		{Label: "Commitment completion %", Value: commitmentCompletion, Delta: floatPtr(2.1), Help: strPtr("Completed points divided by points committed at sprint start.")},
		{Label: "Rollover rate %", Value: rolloverRate, Delta: floatPtr(-1.4), Help: strPtr("Rolled-over points divided by committed points.")},
		{Label: "DoR compliance %", Value: dorCompliance, Delta: floatPtr(0.8), Help: strPtr("Percentage of items that met Definition of Ready before sprint start.")},
		{Label: "Bug ratio", Value: bugRatio, Delta: floatPtr(-0.1), Help: strPtr("Number of bugs divided by number of stories completed.")},
	}
}

// formatDate 日付をYYYY-MM-DD形式の文字列に変換する
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// round1 小数第1位に丸める
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 小数第2位に丸める
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
