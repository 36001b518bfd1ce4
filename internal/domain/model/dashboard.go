package model

// KPI ダッシュボード上部に表示する単一の指標カード
type KPI struct {
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Delta *float64 `json:"delta,omitempty"` // 前期間との差分（オプション）
	Help  *string  `json:"help,omitempty"`  // 指標の説明文（オプション）
}

// VelocityPoint ベロシティチャートの1スプリント分のデータ点
type VelocityPoint struct {
	Key       string  `json:"key"`
	Start     string  `json:"start"` // YYYY-MM-DD形式
	End       string  `json:"end"`   // YYYY-MM-DD形式
	Committed float64 `json:"committed"`
	Completed float64 `json:"completed"`
}

// CommitmentPoint コミットメント対完了チャートの1スプリント分のデータ点
type CommitmentPoint struct {
	Sprint    string  `json:"sprint"`
	Committed float64 `json:"committed"`
	Completed float64 `json:"completed"`
	Rollover  float64 `json:"rollover"`
	Percent   float64 `json:"percent"`
}

// RolloverPoint ロールオーバー推移チャートの1スプリント分のデータ点
type RolloverPoint struct {
	Sprint    string  `json:"sprint"`
	Percent   float64 `json:"percent"`
	Committed float64 `json:"committed"`
	Rolled    float64 `json:"rolled"`
}

// ScopeSummary スコープ変更のサマリー（スプリントあたりの平均値）
type ScopeSummary struct {
	AvgAdded      float64 `json:"avg_added"`
	AvgRemoved    float64 `json:"avg_removed"`
	AvgNetPercent float64 `json:"avg_net_percent"`
}

// SprintRow スプリント一覧テーブルの1行
type SprintRow struct {
	Sprint               string  `json:"sprint"`
	Start                string  `json:"start"` // YYYY-MM-DD形式
	End                  string  `json:"end"`   // YYYY-MM-DD形式
	Committed            float64 `json:"committed"`
	Completed            float64 `json:"completed"`
	CompletionPercent    float64 `json:"completion_percent"`
	RolloverPoints       float64 `json:"rollover_points"`
	RolloverPercent      float64 `json:"rollover_percent"`
	DorCompliancePercent float64 `json:"dor_compliance_percent"`
	BugsCreated          int     `json:"bugs_created"`
	ItemsReopened        int     `json:"items_reopened"`
}

// TeamDashboardResponse チームダッシュボードAPIのレスポンス全体
type TeamDashboardResponse struct {
	TeamName               string            `json:"team_name"`
	KPIs                   []KPI             `json:"kpis"`
	Velocity               []VelocityPoint   `json:"velocity"`
	CommitmentVsCompletion []CommitmentPoint `json:"commitment_vs_completion"`
	RolloverTrend          []RolloverPoint   `json:"rollover_trend"`
	ScopeChange            ScopeSummary      `json:"scope_change"`
	SprintRows             []SprintRow       `json:"sprint_rows"`
}
