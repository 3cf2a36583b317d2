// Package prompt は水彩画生成・編集用の指示文を決定的に組み立てます。
// ここでの検証は「空文字でないこと」のみで、それ以上の制約は呼び出し側の責務です。
package prompt

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPlace は場所の説明が空の場合に返されます。
	ErrEmptyPlace = errors.New("場所の説明が空です")

	// ErrEmptyInstruction は編集指示が空の場合に返されます。
	ErrEmptyInstruction = errors.New("編集指示が空です")
)

// BuildGenerate は場所の説明から新規生成用プロンプトを組み立てます。
// 場所の説明はそのままの形でプロンプトに含まれます。
func BuildGenerate(place string) (string, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return "", ErrEmptyPlace
	}
	return strings.ReplaceAll(generateTemplate, "{{PLACE}}", place), nil
}

// BuildEdit は編集指示と元の場所の説明から編集用プロンプトを組み立てます。
// 編集指示は言い換えずそのまま埋め込み、画風・署名・構図の維持をモデルに指示します。
func BuildEdit(instruction, place string) (string, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return "", ErrEmptyInstruction
	}

	out := strings.ReplaceAll(editTemplate, "{{INSTRUCTION}}", instruction)
	out = strings.ReplaceAll(out, "{{PLACE}}", strings.TrimSpace(place))
	return out, nil
}
