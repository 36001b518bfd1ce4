package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GreetingHandler 疎通確認用の固定メッセージを返すハンドラー
type GreetingHandler struct{}

// NewGreetingHandler GreetingHandlerの新しいインスタンスを作成
func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// Root GET / - ルートの挨拶メッセージ
func (h *GreetingHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from FastAPI Backend!"})
}

// Hello GET /api/hello - API疎通確認用メッセージ
func (h *GreetingHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}
