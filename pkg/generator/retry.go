package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// retryPolicy は一時的エラーに対する上限付き指数バックオフです。
// 状態は1回の呼び出しの間しか生きません。呼び出しをまたぐ協調はしない設計です。
type retryPolicy struct {
	maxAttempts int
	backoffBase time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
	}
}

// execute は fn を最大 maxAttempts 回実行します。
// 成功したら即座に結果を返します。一時的エラーの場合のみ backoffBase,
// backoffBase*2, ... と待機を挟んで再試行し、それ以外は即座に失敗させます。
func (p retryPolicy) execute(ctx context.Context, fn func(context.Context) (*ImageOutput, error)) (*ImageOutput, error) {
	delay := p.backoffBase
	var lastErr error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isTransientFailure(err) {
			// 恒久的エラーは待機なしでそのまま返す
			return nil, err
		}
		if attempt == p.maxAttempts {
			break
		}

		slog.InfoContext(ctx, "一時的エラーのため再試行します",
			"attempt", attempt,
			"max_attempts", p.maxAttempts,
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("バックオフ待機中に中断されました: %w", ctx.Err())
		}
		delay *= 2
	}

	if lastErr == nil {
		// ループの構造上ここには到達しないはずの防御
		return nil, fmt.Errorf("%w (%d回)", ErrRetryExhausted, p.maxAttempts)
	}
	return nil, fmt.Errorf("%w (%d回): %w", ErrRetryExhausted, p.maxAttempts, lastErr)
}

// isTransientFailure はリトライすべき失敗かどうかを判定します。
// 可能な限り構造化ステータス (genai.APIError) を参照し、得られない場合のみ
// メッセージ文字列の指標（429 / 500 / internal）に落とします。
func isTransientFailure(err error) bool {
	if err == nil {
		return false
	}
	// 画像なし応答はサービス障害ではなく応答不正。再試行しても無駄です。
	if errors.Is(err, ErrNoImageData) {
		return false
	}

	// SDK は APIError を値で返すため値型で照合し、ラップ等で
	// ポインタになっている場合も拾います。
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isTransientStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isTransientStatus(apiErrPtr.Code)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "internal")
}

func isTransientStatus(code int) bool {
	return code == 429 || code >= 500
}
