package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/watercolor-kit/pkg/domain"
	"github.com/shouni/watercolor-kit/pkg/prompt"

	"github.com/google/uuid"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// WatercolorPainter は「場所の説明 → 水彩画」の生成と、その後の編集指示を
// オーケストレーションします。呼び出し間で状態を持たないため、編集の連鎖では
// 最新の ImageAsset を次の RetouchRequest に渡すのは呼び出し側の責務です。
type WatercolorPainter struct {
	imgCore ImageGeneratorCore
	model   string
}

// NewWatercolorPainter は依存関係を注入して WatercolorPainter を初期化します。
// model が空の場合は DefaultModel を使います。
func NewWatercolorPainter(core ImageGeneratorCore, model string) (*WatercolorPainter, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &WatercolorPainter{
		imgCore: core,
		model:   model,
	}, nil
}

var _ ImagePainter = (*WatercolorPainter)(nil)

// Paint は場所の説明から新規に水彩画を生成します。
func (p *WatercolorPainter) Paint(ctx context.Context, req domain.PaintRequest) (*domain.ImageAsset, error) {
	promptText, err := prompt.BuildGenerate(req.Place)
	if err != nil {
		return nil, err
	}

	paintID := uuid.NewString()
	slog.InfoContext(ctx, "水彩画の生成を開始します",
		"paint_id", paintID, "place", req.Place, "model", p.model)

	parts := []*genai.Part{{Text: promptText}}
	out, err := p.imgCore.generate(ctx, p.model, parts, p.options(req.AspectRatio, req.Seed))
	if err != nil {
		return nil, fmt.Errorf("水彩画の生成に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "水彩画の生成が完了しました",
		"paint_id", paintID, "mime_type", out.MimeType, "bytes", len(out.Data))
	return &domain.ImageAsset{Data: out.Data, MimeType: out.MimeType}, nil
}

// Retouch は既存の水彩画へ編集指示を1件適用し、新しい画像を返します。
// 元画像は変更されません。
func (p *WatercolorPainter) Retouch(ctx context.Context, req domain.RetouchRequest) (*domain.ImageAsset, error) {
	promptText, err := prompt.BuildEdit(req.Instruction, req.Place)
	if err != nil {
		return nil, err
	}

	basePart, err := p.imgCore.prepareReferencePart(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("編集対象画像の準備に失敗しました: %w", err)
	}

	paintID := uuid.NewString()
	slog.InfoContext(ctx, "水彩画の編集を開始します",
		"paint_id", paintID, "place", req.Place, "model", p.model)

	// 画像パーツを先頭、指示テキストをその後ろに置く並びで送ります。
	parts := []*genai.Part{basePart, {Text: promptText}}
	out, err := p.imgCore.generate(ctx, p.model, parts, p.options(req.AspectRatio, req.Seed))
	if err != nil {
		return nil, fmt.Errorf("水彩画の編集に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "水彩画の編集が完了しました",
		"paint_id", paintID, "mime_type", out.MimeType, "bytes", len(out.Data))
	return &domain.ImageAsset{Data: out.Data, MimeType: out.MimeType}, nil
}

func (p *WatercolorPainter) options(aspectRatio string, seed *int64) gemini.GenerateOptions {
	if aspectRatio == "" {
		aspectRatio = DefaultAspectRatio
	}
	return gemini.GenerateOptions{
		AspectRatio: aspectRatio,
		Seed:        seed,
	}
}
