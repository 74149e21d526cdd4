package preprocessing

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StandardScaler はscikit-learn互換の標準化スケーラー
// データを平均0、標準偏差1に変換する
//
// 標準偏差は標本標準偏差（分母 n-1）を使う。
// 統計量は保持しない。Transformのたびに入力から計算し直す。
type StandardScaler struct {
	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// パラメータ:
//   - withMean: 平均を引くかどうか (デフォルト: true)
//   - withStd: 標準偏差で割るかどうか (デフォルト: true)
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	XScaled, err := scaler.Transform(X)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Transform は入力の各列を標準化する
//
// 分散0の列は、WithMeanが有効なら全て0になる。WithStdだけが有効な場合は
// 標準偏差を1とみなし、値をそのまま残す。どちらも無効な場合は入力のコピーを返す。
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	return standardScale("StandardScaler.Transform", X, s.WithMean, s.WithStd)
}

// GetParams はスケーラーのパラメータを取得する
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"with_mean": s.WithMean,
		"with_std":  s.WithStd,
	}
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
}

// StandardScale は各列を平均0・標準偏差1に変換する
//
// 各要素 x について (x - mean) / std を返す。stdは標本標準偏差（分母 n-1）。
// 分散0の列（1行しかない場合を含む）は全て0になる。
func StandardScale(X mat.Matrix) (*mat.Dense, error) {
	return standardScale("StandardScale", X, true, true)
}

func standardScale(op string, X mat.Matrix, withMean, withStd bool) (*mat.Dense, error) {
	start := time.Now()
	r, c, err := checkInput(op, X)
	if err != nil {
		return nil, err
	}
	if !withMean && !withStd {
		result := mat.DenseCopyOf(X)
		report(op, r, c, start, nil, 0)
		return result, nil
	}

	stats, err := computeColumnStats(op, X, r, c, true)
	if err != nil {
		return nil, err
	}

	degenerate := stats.ZeroVariance()
	isDegenerate := indexSet(c, degenerate)

	result := mat.NewDense(r, c, nil)
	forEachColumn(c, func(j int) {
		col := mat.Col(nil, j, X)
		if isDegenerate[j] {
			if !withMean {
				result.SetCol(j, col)
			}
			// それ以外はNewDenseのゼロ初期化のまま
			return
		}
		if withMean {
			floats.AddConst(-stats.Mean[j], col)
		}
		if withStd {
			for i := range col {
				col[i] /= stats.Std[j]
			}
		}
		result.SetCol(j, col)
	})

	if !withMean {
		// 値を変えていないので警告しない
		degenerate = nil
	}
	report(op, r, c, start, degenerate, 0)
	return result, nil
}
