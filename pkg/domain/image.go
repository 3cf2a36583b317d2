package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageAsset は生成モデルが出力した画像ペイロードとそのメディアタイプです。
// 一度生成されたら不変として扱い、編集のたびに新しい ImageAsset を作ります。
type ImageAsset struct {
	Data     []byte
	MimeType string
}

// IsZero は画像データを持っていない場合に true を返します。
func (a ImageAsset) IsZero() bool {
	return len(a.Data) == 0
}

// DataURI は自己記述形式 "data:<mediaType>;base64,<payload>" に変換します。
// ブラウザ表示やファイルを介さない受け渡しにそのまま使える形式です。
func (a ImageAsset) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MimeType, base64.StdEncoding.EncodeToString(a.Data))
}

// ParseDataURI は DataURI の逆変換です。
// メディアタイプとペイロードのバイト列を欠落なく復元します。
func ParseDataURI(s string) (ImageAsset, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ImageAsset{}, fmt.Errorf("data URI 形式ではありません: %q", truncateForError(s))
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ImageAsset{}, fmt.Errorf("data URI にペイロード区切りがありません")
	}

	mimeType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return ImageAsset{}, fmt.Errorf("base64 エンコード以外の data URI には対応していません")
	}
	if mimeType == "" {
		return ImageAsset{}, fmt.Errorf("data URI にメディアタイプがありません")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("data URI のデコードに失敗しました: %w", err)
	}

	return ImageAsset{Data: data, MimeType: mimeType}, nil
}

func truncateForError(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
