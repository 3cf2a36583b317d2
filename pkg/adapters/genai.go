// Package adapters はコアが要求する窓口を実際の外部サービスへ接続します。
package adapters

import (
	"context"
	"fmt"

	"github.com/shouni/watercolor-kit/pkg/generator"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// GenAIModel は google.golang.org/genai を直接呼び出す GenerativeModel 実装です。
type GenAIModel struct {
	client *genai.Client
}

// NewGenAIModel は API キーを注入して Gemini API クライアントを初期化します。
// キーは環境から暗黙に読まず、必ず呼び出し側から渡します。
func NewGenAIModel(ctx context.Context, apiKey string) (*GenAIModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini クライアントの初期化に失敗しました: %w", err)
	}

	return &GenAIModel{client: client}, nil
}

var _ generator.GenerativeModel = (*GenAIModel)(nil)

// GenerateWithParts は1回分の生成リクエストを実行します。
// エラーはリトライ判定で構造化ステータスを参照できるよう、ラップせずに返します。
func (m *GenAIModel) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := m.client.Models.GenerateContent(ctx, model, contents, buildGenerateConfig(opts))
	if err != nil {
		return nil, err
	}
	return &gemini.Response{RawResponse: resp}, nil
}

// buildGenerateConfig は go-gemini-client のオプションを genai の設定へ写します。
func buildGenerateConfig(opts gemini.GenerateOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if opts.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: opts.AspectRatio}
	}
	if opts.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}
	cfg.Seed = seedToPtrInt32(opts.Seed)
	return cfg
}

// seedToPtrInt32 は *int64 のシードを SDK が期待する *int32 に変換します。
// int32 範囲を超えた分の切り捨ては、シードの再現性としては期待どおりの挙動です。
func seedToPtrInt32(seed *int64) *int32 {
	if seed == nil {
		return nil
	}
	val := int32(*seed)
	return &val
}
