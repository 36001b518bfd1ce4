package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"TeamPulse-App/internal/config"
	"TeamPulse-App/internal/database"
	"TeamPulse-App/internal/domain/repository"
	"TeamPulse-App/internal/domain/service"
	"TeamPulse-App/internal/handler"
	infradb "TeamPulse-App/internal/infrastructure/database"
	"TeamPulse-App/internal/infrastructure/firestore"
	"TeamPulse-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	// 診断用ストアはオプショナル。未設定でもダッシュボードAPIは動作する
	store := selectDiagnosticsStore()
	if store == nil {
		fmt.Println("⚠️  診断用データベースは未設定です（/testは劣化モードで応答します）")
	} else {
		fmt.Printf("✅ 診断用ストアを初期化しました: %s\n", store.Name())
	}

	analyticsService := service.NewSprintAnalyticsService()
	dashboardUseCase := usecase.NewDashboardUseCase(analyticsService)

	greetingHandler := handler.NewGreetingHandler()
	dashboardHandler := handler.NewDashboardHandler(dashboardUseCase)
	diagnosticsHandler := handler.NewDiagnosticsHandler(store)

	r := handler.NewRouter(greetingHandler, dashboardHandler, diagnosticsHandler)

	fmt.Printf("TeamPulse-App server starting on %s...\n", cfg.Addr())
	log.Fatal(r.Run(cfg.Addr()))
}

// selectDiagnosticsStore 環境変数に応じて診断用ストアを選択する
// 初期化に失敗しても警告のみでnilを返す（診断エンドポイントは致命的ではない）
func selectDiagnosticsStore() repository.DiagnosticsStore {
	if os.Getenv("DATABASE_URL") != "" {
		client, err := infradb.NewPostgreSQLClient()
		if err != nil {
			fmt.Printf("⚠️  PostgreSQLクライアント初期化失敗: %v\n", err)
		} else {
			return client
		}
	}

	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		client, err := firestore.NewFirestoreClient(context.Background(), projectID)
		if err != nil {
			fmt.Printf("⚠️  Firestoreクライアント初期化失敗: %v\n", err)
		} else {
			return client
		}
	}

	if os.Getenv("SUPABASE_URL") != "" {
		client, err := database.NewSupabaseClient()
		if err != nil {
			fmt.Printf("⚠️  Supabaseクライアント初期化失敗: %v\n", err)
		} else {
			return client
		}
	}

	return nil
}
