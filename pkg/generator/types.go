package generator

import "time"

const (
	// DefaultModel は水彩画の生成・編集に使う既定の画像生成モデルです。
	DefaultModel = "gemini-2.5-flash-image"

	// DefaultAspectRatio は出力画像の既定アスペクト比です。
	DefaultAspectRatio = "16:9"

	// UseImageCompression が true の場合、リモートから取得した参照画像を
	// 送信前に JPEG へ再圧縮します。
	UseImageCompression     = true
	ImageCompressionQuality = 75

	cacheKeyReference = "reference_image:"
)

// リトライ方針の既定値。1.5s, 3s と倍々で待機し、3回で打ち切ります。
const (
	defaultMaxAttempts = 3
	defaultBackoffBase = 1500 * time.Millisecond
)

// ImageOutput は1回のモデル呼び出しの内部解析結果です。
type ImageOutput struct {
	Data     []byte
	MimeType string
}
