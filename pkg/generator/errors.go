package generator

import "errors"

// generator パッケージが返す共通エラー
var (
	// ErrNoImageData はモデルが画像を含まない応答を返した場合のエラーです。
	// 応答不正であって一時障害ではないため、リトライ対象にはなりません。
	ErrNoImageData = errors.New("モデル応答に画像データがありません")

	// ErrRetryExhausted は一時的エラーのリトライ上限に達した場合のエラーです。
	// 最後に発生した失敗をラップして保持します。
	ErrRetryExhausted = errors.New("リトライ上限に達しました")
)
