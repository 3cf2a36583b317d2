package domain

// PaintRequest は場所の説明から新規に水彩画を生成する要求です。
type PaintRequest struct {
	// Place は描く場所の説明（例: "秋の京都・哲学の道"）。必須。
	Place string
	// AspectRatio は出力比率。空の場合は生成側の既定値 (16:9) を使います。
	AspectRatio string
	// Seed は再現性のための乱数シード。nil でモデル任せ。
	Seed *int64
}

// RetouchRequest は既存の水彩画に対する編集要求です。
// Place を毎回引き継ぐことで、編集を重ねてもモデルが元の情景を見失いません。
type RetouchRequest struct {
	// Base は編集対象の最新画像。BaseURL と排他で、どちらか一方を指定します。
	Base ImageAsset
	// BaseURL は編集対象を http(s) または gs:// から取得する場合の参照先。
	BaseURL string
	// Instruction は自然言語の編集指示。必須。
	Instruction string
	// Place は最初の生成に使った場所の説明。
	Place string
	// AspectRatio は出力比率。空の場合は生成側の既定値を使います。
	AspectRatio string
	// Seed は再現性のための乱数シード。nil でモデル任せ。
	Seed *int64
}
