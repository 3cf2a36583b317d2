// Package config はプロセス環境からの起動時設定を扱います。
// ライブラリ側（pkg/generator 等）は環境変数を一切読みません。資格情報は
// ここで解決し、コンストラクタ経由で注入します。
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envAPIKey         = "GEMINI_API_KEY"
	envAPIKeyFallback = "GOOGLE_API_KEY"
	envModel          = "WATERCOLOR_MODEL"
	envAspectRatio    = "WATERCOLOR_ASPECT_RATIO"
)

// Config は CLI の起動に必要な設定一式です。
type Config struct {
	// APIKey は Gemini API の資格情報。必須。
	APIKey string
	// Model は使用するモデル名。空の場合は生成側の既定値を使います。
	Model string
	// AspectRatio は出力アスペクト比。空の場合は生成側の既定値を使います。
	AspectRatio string
}

// Load は .env（あれば）とプロセス環境から設定を読み込みます。
// API キーの欠落は起動時点の致命的エラーであり、リクエスト時には検査しません。
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := strings.TrimSpace(os.Getenv(envAPIKey))
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(envAPIKeyFallback))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s が設定されていません（.env でも指定できます）", envAPIKey)
	}

	return &Config{
		APIKey:      apiKey,
		Model:       strings.TrimSpace(os.Getenv(envModel)),
		AspectRatio: strings.TrimSpace(os.Getenv(envAspectRatio)),
	}, nil
}
