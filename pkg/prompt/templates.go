package prompt

import _ "embed"

// プロンプト原文はビルド時に埋め込みます。
var (
	//go:embed templates/generate.txt
	generateTemplate string

	//go:embed templates/edit.txt
	editTemplate string
)
