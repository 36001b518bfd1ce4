package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey コンテキストに格納するリクエストIDのキー
const requestIDKey = "request_id"

// RequestIDMiddleware リクエストごとにX-Request-IDを付与するミドルウェア
// クライアントが指定した場合はその値をそのまま使う
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
