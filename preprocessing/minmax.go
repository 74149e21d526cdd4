package preprocessing

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// MinMaxScaler はscikit-learn互換のMin-Maxスケーラー
// データを指定した範囲（デフォルト[0,1]）にスケーリングする
//
// 統計量は保持しない。Transformのたびに入力の最小値・最大値を計算し直す。
type MinMaxScaler struct {
	// FeatureRange はスケーリング後の範囲 [min, max]
	FeatureRange [2]float64
}

// NewMinMaxScaler は新しいMinMaxScalerを作成する
//
// パラメータ:
//   - featureRange: スケーリング後の範囲 [min, max] (デフォルト: [0, 1])
//
// 使用例:
//
//	scaler := preprocessing.NewMinMaxScaler([2]float64{-1.0, 1.0})
//	XScaled, err := scaler.Transform(X)
func NewMinMaxScaler(featureRange [2]float64) *MinMaxScaler {
	return &MinMaxScaler{
		FeatureRange: featureRange,
	}
}

// NewMinMaxScalerDefault はデフォルト設定([0,1]範囲)でMinMaxScalerを作成する
func NewMinMaxScalerDefault() *MinMaxScaler {
	return NewMinMaxScaler([2]float64{0.0, 1.0})
}

// Transform は入力の各列をFeatureRangeにスケーリングする
func (m *MinMaxScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	return rangeScale("MinMaxScaler.Transform", X, m.FeatureRange[0], m.FeatureRange[1])
}

// GetParams はスケーラーのパラメータを取得する
func (m *MinMaxScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"feature_range": m.FeatureRange,
	}
}

// String はスケーラーの文字列表現を返す
func (m *MinMaxScaler) String() string {
	return fmt.Sprintf("MinMaxScaler(feature_range=[%g, %g])", m.FeatureRange[0], m.FeatureRange[1])
}

// MinMaxScale は各列を [0, 1] にスケーリングする
//
// 各要素 x について (x - min) / (max - min) を返す。
// max == min の列は全て0になる。
//
// 戻り値:
//   - *mat.Dense: Xと同じ形状の新しい行列
//   - error: Xがnilまたは空の場合
func MinMaxScale(X mat.Matrix) (*mat.Dense, error) {
	return rangeScale("MinMaxScale", X, 0, 1)
}

// RangeScale は各列を [lo, hi] にスケーリングする
//
// 各要素 x について ((x - min) / (max - min)) * (hi - lo) + lo を返す。
// max == min の列は全てloになる。RangeScale(X, 0, 1) はMinMaxScale(X)と同じ結果になる。
//
// 戻り値:
//   - *mat.Dense: Xと同じ形状の新しい行列
//   - error: Xが空、lo・hiが有限でない、または lo >= hi の場合
func RangeScale(X mat.Matrix, lo, hi float64) (*mat.Dense, error) {
	return rangeScale("RangeScale", X, lo, hi)
}

func rangeScale(op string, X mat.Matrix, lo, hi float64) (*mat.Dense, error) {
	start := time.Now()
	if err := checkFiniteParam("feature_range[0]", lo); err != nil {
		return nil, err
	}
	if err := checkFiniteParam("feature_range[1]", hi); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, errors.NewValidationError("feature_range", "minimum must be smaller than maximum", [2]float64{lo, hi})
	}

	r, c, err := checkInput(op, X)
	if err != nil {
		return nil, err
	}
	stats, err := computeColumnStats(op, X, r, c, false)
	if err != nil {
		return nil, err
	}

	degenerate := stats.ZeroRange()
	isDegenerate := indexSet(c, degenerate)
	width := hi - lo

	result := mat.NewDense(r, c, nil)
	forEachColumn(c, func(j int) {
		col := mat.Col(nil, j, X)
		if isDegenerate[j] {
			for i := range col {
				col[i] = lo
			}
			result.SetCol(j, col)
			return
		}

		unitScale(col, stats.Min[j], stats.Max[j])
		// [0,1] の場合は変換しない（最小値0・最大値1を厳密に保つ）
		switch {
		case lo == 0 && hi == 1:
		case math.IsInf(width, 0):
			// hi - lo がオーバーフローする範囲は半分の値で補間する
			for i, v := range col {
				col[i] = 2 * (lo/2*(1-v) + hi/2*v)
			}
		default:
			floats.Scale(width, col)
			floats.AddConst(lo, col)
		}
		result.SetCol(j, col)
	})

	report(op, r, c, start, degenerate, lo)
	return result, nil
}

// unitScale はcolを (x - min) / (max - min) で [0, 1] に写す
//
// max - min が有限の値に収まらない列は、全ての値を半分にしてから計算する。
func unitScale(col []float64, colMin, colMax float64) {
	dataRange := colMax - colMin
	if math.IsInf(dataRange, 0) {
		halfRange := colMax/2 - colMin/2
		for i, v := range col {
			col[i] = (v/2 - colMin/2) / halfRange
		}
		return
	}
	floats.AddConst(-colMin, col)
	for i := range col {
		col[i] /= dataRange
	}
}
