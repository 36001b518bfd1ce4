package handler

import (
	"net/http"
	"os"

	"TeamPulse-App/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

// maxCollections /testレスポンスに含めるコレクション名の上限
const maxCollections = 10

// DiagnosticsHandler データベース疎通の診断エンドポイントのハンドラー
// storeはnil可。ストア未設定・接続失敗でもレスポンスは常に200で返す
type DiagnosticsHandler struct {
	store repository.DiagnosticsStore
}

// NewDiagnosticsHandler DiagnosticsHandlerの新しいインスタンスを作成
func NewDiagnosticsHandler(store repository.DiagnosticsStore) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store: store,
	}
}

// GetDiagnostics GET /test - データベースの存在と疎通を確認する診断エンドポイント
func (h *DiagnosticsHandler) GetDiagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			response["database"] = "❌ Error: " + truncateError(err)
		} else {
			response["database"] = "✅ Available"
			response["database_url"] = "✅ Configured"
			response["connection_status"] = "Connected"

			collections, err := h.store.ListCollections(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + truncateError(err)
			} else {
				if len(collections) > maxCollections {
					collections = collections[:maxCollections]
				}
				response["collections"] = collections
				response["database"] = "✅ Connected & Working"
			}
		}
	}

	// 環境変数の設定状況は接続結果に関わらず上書きで報告する
	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

// truncateError エラーメッセージを50文字に切り詰める
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		return msg[:50]
	}
	return msg
}

// envStatus 環境変数の設定有無を表すステータス文字列を返す
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
