package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirestoreClient Cloud Firestoreクライアントのラッパー
// /test診断用のオプショナルなストアとして使用する
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient 新しいFirestoreクライアントを作成
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// Cloud Run環境ではデフォルト認証を使用
	if os.Getenv("K_SERVICE") != "" {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client with default auth: %w", err)
		}
		log.Printf("✅ Firestore client initialized for project: %s (Cloud Run default auth)", projectID)
		return &FirestoreClient{client: client}, nil
	}

	// ローカル環境では環境変数で指定された認証ファイルを使用
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile != "" {
		if _, fileErr := os.Stat(credentialsFile); fileErr == nil {
			log.Printf("📄 Using credentials file: %s", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		} else {
			log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		}
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	log.Printf("✅ Firestore client initialized for project: %s", projectID)

	return &FirestoreClient{client: client}, nil
}

// Close クライアントを閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// Name ストアの表示名を返す
func (fc *FirestoreClient) Name() string {
	return "Firestore"
}

// Ping Firestoreへの疎通確認を行う（コレクション1件の取得を試みる）
func (fc *FirestoreClient) Ping(ctx context.Context) error {
	if fc.client == nil {
		return fmt.Errorf("Firestoreクライアントが初期化されていません")
	}

	_, err := fc.client.Collections(ctx).Next()
	if err != nil && err != iterator.Done {
		return fmt.Errorf("Firestoreへの接続に失敗: %w", err)
	}
	return nil
}

// ListCollections トップレベルのコレクションID一覧を取得する
func (fc *FirestoreClient) ListCollections(ctx context.Context) ([]string, error) {
	var names []string

	it := fc.client.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("コレクション一覧の取得に失敗: %w", err)
		}
		names = append(names, col.ID)
	}

	return names, nil
}
