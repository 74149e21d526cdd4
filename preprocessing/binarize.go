package preprocessing

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// Binarizer は閾値で各要素を0か1に変換する
//
// x >= Threshold なら1、それ以外は0。閾値ちょうどの値は1になる。
// 入力のNaNはどの閾値に対しても1になる。
type Binarizer struct {
	// Threshold は比較に使う閾値
	Threshold float64
}

// NewBinarizer は新しいBinarizerを作成する
func NewBinarizer(threshold float64) *Binarizer {
	return &Binarizer{Threshold: threshold}
}

// Transform は各要素を閾値と比較して0か1に変換する
func (b *Binarizer) Transform(X mat.Matrix) (*mat.Dense, error) {
	return binarize("Binarizer.Transform", X, b.Threshold)
}

// GetParams はパラメータを取得する
func (b *Binarizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"threshold": b.Threshold,
	}
}

// String は文字列表現を返す
func (b *Binarizer) String() string {
	return fmt.Sprintf("Binarizer(threshold=%g)", b.Threshold)
}

// Binarize は x >= threshold の要素を1、それ以外を0に変換する
//
// 戻り値:
//   - *mat.Dense: 0と1だけを含む、Xと同じ形状の新しい行列
//   - error: Xが空、またはthresholdがNaNの場合
func Binarize(X mat.Matrix, threshold float64) (*mat.Dense, error) {
	return binarize("Binarize", X, threshold)
}

func binarize(op string, X mat.Matrix, threshold float64) (*mat.Dense, error) {
	start := time.Now()
	// ±Infは有効な閾値として扱う
	if math.IsNaN(threshold) {
		return nil, errors.NewValidationError("threshold", "must not be NaN", threshold)
	}
	r, c, err := checkInput(op, X)
	if err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, _ float64) float64 {
		if X.At(i, j) < threshold {
			return 0
		}
		return 1
	}, result)

	report(op, r, c, start, nil, 0)
	return result, nil
}
