package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter Ginルーターをセットアップして全エンドポイントを登録する
func NewRouter(
	greetingHandler *GreetingHandler,
	dashboardHandler *DashboardHandler,
	diagnosticsHandler *DiagnosticsHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	// フロントエンド（ダッシュボード）からのアクセスを全面許可
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	r.GET("/", greetingHandler.Root)
	r.GET("/api/hello", greetingHandler.Hello)
	r.GET("/test", diagnosticsHandler.GetDiagnostics)
	r.GET("/api/team-dashboard", dashboardHandler.GetTeamDashboard)

	return r
}
