package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shouni/watercolor-kit/pkg/adapters"
	"github.com/shouni/watercolor-kit/pkg/config"
	"github.com/shouni/watercolor-kit/pkg/domain"
	"github.com/shouni/watercolor-kit/pkg/generator"
)

// version はビルド時に ldflags で注入されます
var version = "dev"

func main() {
	var (
		outDir      string
		modelName   string
		aspectRatio string
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:     "watercolor <place>",
		Short:   "場所の名前から水彩画を生成し、対話的に編集するツール",
		Long:    "watercolor は場所の説明を Gemini の画像生成モデルに渡して伝統的な水彩画を生成し、\n続けて自然言語の編集指示で同じ絵を段階的に仕上げます。",
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), strings.Join(args, " "), outDir, modelName, aspectRatio, verbose)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "生成画像の保存先ディレクトリ")
	rootCmd.Flags().StringVar(&modelName, "model", "", "使用するモデル名（既定: "+generator.DefaultModel+"）")
	rootCmd.Flags().StringVar(&aspectRatio, "aspect", "", "出力アスペクト比（既定: "+generator.DefaultAspectRatio+"）")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "リトライ等の詳細ログを出力する")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("エラー: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, place, outDir, modelName, aspectRatio string, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if modelName == "" {
		modelName = cfg.Model
	}
	if aspectRatio == "" {
		aspectRatio = cfg.AspectRatio
	}

	aiClient, err := adapters.NewGenAIModel(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	core, err := generator.NewGeminiImageCore(aiClient, nil, nil, nil, 0)
	if err != nil {
		return err
	}
	painter, err := generator.NewWatercolorPainter(core, modelName)
	if err != nil {
		return err
	}

	color.Cyan("「%s」の水彩画を描いています...", place)
	asset, err := painter.Paint(ctx, domain.PaintRequest{Place: place, AspectRatio: aspectRatio})
	if err != nil {
		return err
	}

	path, err := saveAsset(outDir, place, 1, *asset)
	if err != nil {
		return err
	}
	color.Green("保存しました: %s", path)

	return editLoop(ctx, painter, place, aspectRatio, outDir, *asset)
}

// editLoop は標準入力から編集指示を読み、1件ずつ最新の画像へ適用します。
// 空行の入力で終了します。
func editLoop(ctx context.Context, painter generator.ImagePainter, place, aspectRatio, outDir string, first domain.ImageAsset) error {
	scanner := bufio.NewScanner(os.Stdin)
	current := first
	revision := 2

	for {
		fmt.Print("編集指示を入力してください（空行で終了）> ")
		if !scanner.Scan() {
			break
		}
		instruction := strings.TrimSpace(scanner.Text())
		if instruction == "" {
			break
		}

		color.Cyan("編集を適用しています...")
		next, err := painter.Retouch(ctx, domain.RetouchRequest{
			Base:        current,
			Instruction: instruction,
			Place:       place,
			AspectRatio: aspectRatio,
		})
		if err != nil {
			// 失敗しても直前の画像を保持したまま、次の指示を受け付ける
			color.Red("編集に失敗しました: %v", err)
			continue
		}

		path, err := saveAsset(outDir, place, revision, *next)
		if err != nil {
			return err
		}
		color.Green("保存しました: %s", path)

		// 編集は常に最新の画像へ適用する
		current = *next
		revision++
	}
	return scanner.Err()
}

func saveAsset(dir, place string, revision int, asset domain.ImageAsset) (string, error) {
	name := fmt.Sprintf("%s-r%02d%s", slugify(place), revision, extForMime(asset.MimeType))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, asset.Data, 0o644); err != nil {
		return "", fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	return path, nil
}

// extForMime はメディアタイプから保存用の拡張子を決めます。不明な場合は .png。
func extForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// slugify は場所の説明をファイル名に使える形へ整えます。
// 日本語等の非ASCII文字は地名を失わないようそのまま残します。
func slugify(s string) string {
	s = strings.TrimSpace(s)
	repl := strings.NewReplacer(
		" ", "-", "\t", "-", "/", "-", "\\", "-", ":", "-",
		"\"", "", "?", "", "*", "", "<", "", ">", "", "|", "",
	)
	out := repl.Replace(s)
	if out == "" {
		return "watercolor"
	}
	return out
}
