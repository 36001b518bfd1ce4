package model

// DashboardQuery チームダッシュボードAPIのクエリパラメータを保持する
type DashboardQuery struct {
	TeamID          string   `form:"team_id,default=team-1"`
	TeamName        string   `form:"team_name,default=Alpha Team"`
	Grouping        string   `form:"grouping,default=By sprint" binding:"oneof='By sprint' 'By week' 'By month'"` // 集計単位（3種類のみ許可）
	IncludeDoneOnly bool     `form:"include_done_only,default=false"`
	ItemTypes       []string `form:"item_types"`
}

// defaultItemTypes item_types未指定時のデフォルト
var defaultItemTypes = []string{"Stories", "Bugs", "Tasks", "Epics"}

// NormalizedItemTypes 未指定の場合はデフォルトのアイテム種別リストを返す
func (q *DashboardQuery) NormalizedItemTypes() []string {
	if len(q.ItemTypes) == 0 {
		return defaultItemTypes
	}
	return q.ItemTypes
}
