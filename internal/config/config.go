package config

import "os"

// Config サーバー全体の設定
type Config struct {
	Port string
}

// Load 環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8000"),
	}
}

// Addr http.Server用のリッスンアドレスを返す
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
