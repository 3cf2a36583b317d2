package generator

import (
	"context"
	"time"

	"github.com/shouni/watercolor-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// GenerativeModel は画像生成クライアントに要求する最小の窓口です。
// go-gemini-client の GenerativeModel と pkg/adapters の GenAIModel が満たします。
type GenerativeModel interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

// ImagePainter はビジネスロジック層が利用する統合窓口です。
type ImagePainter interface {
	// Paint は場所の説明から新規に水彩画を生成します。
	Paint(ctx context.Context, req domain.PaintRequest) (*domain.ImageAsset, error)
	// Retouch は既存の水彩画へ編集指示を1件適用し、新しい画像を返します。
	Retouch(ctx context.Context, req domain.RetouchRequest) (*domain.ImageAsset, error)
}

// ImageGeneratorCore は painter が利用するコア機能の抽象です。
type ImageGeneratorCore interface {
	generate(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*ImageOutput, error)
	prepareReferencePart(ctx context.Context, req domain.RetouchRequest) (*genai.Part, error)
}

// ImageCacher は取得済み参照画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
