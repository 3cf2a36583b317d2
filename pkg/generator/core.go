package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/watercolor-kit/pkg/domain"
	"github.com/shouni/watercolor-kit/pkg/imgutil"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// GeminiImageCore はモデル呼び出し・応答解析・参照画像の準備を担う基盤クラスです。
// 1回の呼び出しはリトライ方針（retry.go）でラップされます。
type GeminiImageCore struct {
	aiClient   GenerativeModel
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
	retry      retryPolicy
}

// NewGeminiImageCore は依存関係を注入して GeminiImageCore を初期化します。
// reader / httpClient / cache は nil を許容します（リモート参照・キャッシュなし動作）。
func NewGeminiImageCore(aiClient GenerativeModel, reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*GeminiImageCore, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}

	return &GeminiImageCore{
		aiClient:   aiClient,
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
		retry:      defaultRetryPolicy(),
	}, nil
}

// generate は1回分の生成リクエストをリトライ方針付きで実行します。
func (c *GeminiImageCore) generate(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*ImageOutput, error) {
	return c.retry.execute(ctx, func(ctx context.Context) (*ImageOutput, error) {
		return c.executeAttempt(ctx, model, parts, opts)
	})
}

// executeAttempt はモデルをちょうど1回呼び出し、応答から画像を取り出します。
// 失敗の分類は行いません。リトライ可否の判定は retry.go の責務です。
func (c *GeminiImageCore) executeAttempt(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*ImageOutput, error) {
	resp, err := c.aiClient.GenerateWithParts(ctx, model, parts, opts)
	if err != nil {
		return nil, err
	}
	return c.parseToOutput(resp)
}

// parseToOutput は応答の最初の候補から最初のインライン画像パーツを取り出します。
func (c *GeminiImageCore) parseToOutput(resp *gemini.Response) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("%w: 候補が空です", ErrNoImageData)
	}

	candidate := resp.RawResponse.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageOutput{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}

	return nil, ErrNoImageData
}

// prepareReferencePart は編集対象の画像を genai.Part に変換します。
// Base と BaseURL はちょうど一方を指定します。両方・どちらも無しはエラーです。
func (c *GeminiImageCore) prepareReferencePart(ctx context.Context, req domain.RetouchRequest) (*genai.Part, error) {
	if !req.Base.IsZero() {
		if req.BaseURL != "" {
			return nil, errors.New("Base と BaseURL は同時に指定できません")
		}
		return &genai.Part{InlineData: &genai.Blob{MIMEType: req.Base.MimeType, Data: req.Base.Data}}, nil
	}

	if req.BaseURL == "" {
		return nil, errors.New("編集対象の画像が指定されていません")
	}

	data, err := c.fetchImageData(ctx, req.BaseURL)
	if err != nil {
		return nil, err
	}

	finalData := data
	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
		}
	}

	part := c.toPart(finalData)
	if part == nil {
		return nil, fmt.Errorf("参照先のデータが画像ではありません: %s", req.BaseURL)
	}
	return part, nil
}

// fetchImageData は http(s) または gs:// から画像バイト列を取得します。
// 取得結果はキャッシュ（設定されていれば）に保持します。
func (c *GeminiImageCore) fetchImageData(ctx context.Context, rawURL string) ([]byte, error) {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyReference + rawURL); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL)
		}
	}

	var data []byte
	if strings.HasPrefix(rawURL, "gs://") {
		if c.reader == nil {
			return nil, fmt.Errorf("gs:// を読み取る reader が設定されていません: %s", rawURL)
		}
		rc, err := c.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("参照画像の読み取りに失敗しました: %w", err)
		}
		defer rc.Close()
		data, err = io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("参照画像の読み取りに失敗しました: %w", err)
		}
	} else {
		if safe, err := isSafeURL(rawURL); !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		if c.httpClient == nil {
			return nil, fmt.Errorf("http(s) を読み取る httpClient が設定されていません: %s", rawURL)
		}
		var err error
		data, err = c.httpClient.FetchBytes(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("参照画像のダウンロードに失敗しました: %w", err)
		}
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyReference+rawURL, data, c.expiration)
	}
	return data, nil
}

// toPart はバイト列を genai.Part (InlineData) に変換します。画像以外は nil。
func (c *GeminiImageCore) toPart(data []byte) *genai.Part {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}
}
