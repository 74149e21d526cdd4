package model

import "gonum.org/v1/gonum/mat"

// Transformer はデータ変換のインターフェース
//
// Transformは入力から統計量をその都度計算し、新しい行列を返す。
// 入力は変更しない。呼び出し間で状態を持たない。
type Transformer interface {
	// Transform はデータを変換する
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// TransformerFunc は関数をTransformerとして扱うためのアダプタ
type TransformerFunc func(X mat.Matrix) (*mat.Dense, error)

// Transform はf(X)を呼び出す
func (f TransformerFunc) Transform(X mat.Matrix) (*mat.Dense, error) {
	return f(X)
}
