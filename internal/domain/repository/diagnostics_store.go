package repository

import "context"

// DiagnosticsStore 診断エンドポイント用のオプショナルなデータストア
// ダッシュボードの集計処理からは一切使用されず、/test での疎通確認のみに使う
type DiagnosticsStore interface {
	// Name ストアの表示名を返す（例: "PostgreSQL"）
	Name() string

	// Ping ストアへの疎通確認を行う
	Ping(ctx context.Context) error

	// ListCollections ストアが保持するコレクション（テーブル）名の一覧を取得する
	ListCollections(ctx context.Context) ([]string, error)
}
