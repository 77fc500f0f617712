package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（4000）

	DatabaseURL      string // 接続文字列（あれば個別項目より優先）
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）
	PostgresSSLMode  string

	FrontendURL string // CORSで許可するオリジン（1つだけ）
}

// Loadは環境変数から読み込む。未設定はデフォルト値。
func Load() Config {
	return Config{
		Port: getenv("PORT", "4000"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "products"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		FrontendURL: getenv("FE_URL", "http://localhost:5173"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
