package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/core/model"
	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// Chain は変換をメソッドチェーンで連続適用するためのビルダー
//
// Chainは値型で、各メソッドは新しいChainを返す。途中のChainから
// 別の変換を分岐させても互いに影響しない。最初に発生したエラーは
// 保持され、以降の変換はスキップされてResultで返される。
//
//	out, err := preprocessing.From(X).MinMaxScale().StandardScale().Binarize(0).Result()
type Chain struct {
	data  mat.Matrix
	steps int
	err   error
}

// From はXを起点とするChainを作成する。Xは変更されない。
func From(X mat.Matrix) Chain {
	if _, _, err := checkInput("From", X); err != nil {
		return Chain{err: err}
	}
	return Chain{data: X}
}

// MinMaxScale はMinMaxScaleを適用したChainを返す
func (c Chain) MinMaxScale() Chain {
	return c.then("MinMaxScale", MinMaxScale)
}

// RangeScale はRangeScale(lo, hi)を適用したChainを返す
func (c Chain) RangeScale(lo, hi float64) Chain {
	return c.then("RangeScale", func(X mat.Matrix) (*mat.Dense, error) {
		return RangeScale(X, lo, hi)
	})
}

// StandardScale はStandardScaleを適用したChainを返す
func (c Chain) StandardScale() Chain {
	return c.then("StandardScale", StandardScale)
}

// CustomScale はCustomScale(offset, factor)を適用したChainを返す
func (c Chain) CustomScale(offset, factor float64) Chain {
	return c.then("CustomScale", func(X mat.Matrix) (*mat.Dense, error) {
		return CustomScale(X, offset, factor)
	})
}

// Binarize はBinarize(threshold)を適用したChainを返す
func (c Chain) Binarize(threshold float64) Chain {
	return c.then("Binarize", func(X mat.Matrix) (*mat.Dense, error) {
		return Binarize(X, threshold)
	})
}

// Apply は任意のTransformerを適用したChainを返す
func (c Chain) Apply(t model.Transformer) Chain {
	if t == nil {
		return c.fail(errors.NewValueError("Chain.Apply", "nil transformer"))
	}
	return c.then(stepName(t), t.Transform)
}

// Err は最初に発生したエラーを返す
func (c Chain) Err() error {
	return c.err
}

// Steps は適用済みの変換の数を返す
func (c Chain) Steps() int {
	return c.steps
}

// Result は最後の変換結果を返す
//
// 変換を1つも適用していない場合は入力のコピーを返す。
// 返された行列を書き換えた後は、同じChainから変換を続けないこと。
func (c Chain) Result() (*mat.Dense, error) {
	if c.err != nil {
		return nil, c.err
	}
	if d, ok := c.data.(*mat.Dense); ok && c.steps > 0 {
		return d, nil
	}
	return mat.DenseCopyOf(c.data), nil
}

func (c Chain) then(name string, fn func(mat.Matrix) (*mat.Dense, error)) Chain {
	if c.err != nil {
		return c
	}
	out, err := fn(c.data)
	if err != nil {
		return c.fail(errors.Wrapf(err, "chain step %d (%s)", c.steps, name))
	}
	return Chain{data: out, steps: c.steps + 1}
}

func (c Chain) fail(err error) Chain {
	return Chain{steps: c.steps, err: err}
}

// stepName はログやエラーに使う変換の名前を返す
func stepName(t model.Transformer) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}
