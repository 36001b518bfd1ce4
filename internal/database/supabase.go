package database

import (
	"context"
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient Supabaseクライアントのラッパー
// /test診断用のオプショナルなストアとして使用する
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 新しいSupabaseクライアントを作成
func NewSupabaseClient() (*SupabaseClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// Name ストアの表示名を返す
func (sc *SupabaseClient) Name() string {
	return "Supabase"
}

// Ping データベース接続のヘルスチェック
// 軽量なチェックとしてクライアントの初期化状態のみ確認する
func (sc *SupabaseClient) Ping(ctx context.Context) error {
	if sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}
	return nil
}

// ListCollections テーブル名一覧を取得する
// PostgREST経由ではテーブル一覧を参照できないため常に空リストを返す
func (sc *SupabaseClient) ListCollections(ctx context.Context) ([]string, error) {
	return []string{}, nil
}
