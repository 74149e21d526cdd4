package preprocessing

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/prepro/core/parallel"
	"github.com/YuminosukeSato/prepro/pkg/errors"
	"github.com/YuminosukeSato/prepro/pkg/log"
)

// parallelColumnThreshold を超える列数の行列では列ごとの処理を並列化する
const parallelColumnThreshold = 64

// ColumnStats は1回の変換の中だけで使う列ごとの統計量
type ColumnStats struct {
	// Min, Max は各列の最小値・最大値
	Min []float64
	Max []float64

	// Mean は各列の平均値
	Mean []float64

	// Std は各列の標本標準偏差（分母 n-1）。1行しかない場合は0
	Std []float64
}

// ComputeColumnStats は各列の最小値・最大値・平均・標本標準偏差を計算する
//
// パラメータ:
//   - X: 入力データ (n_samples × n_features の行列)
//
// 戻り値:
//   - *ColumnStats: 列ごとの統計量
//   - error: 空のデータ、または統計量がNaN・Infになった場合
func ComputeColumnStats(X mat.Matrix) (*ColumnStats, error) {
	start := time.Now()
	r, c, err := checkInput("ComputeColumnStats", X)
	if err != nil {
		return nil, err
	}
	s, err := computeColumnStats("ComputeColumnStats", X, r, c, true)
	if err != nil {
		return nil, err
	}
	logApplied("column statistics computed", "ComputeColumnStats", log.OperationStats, r, c, start, log.DegenerateColumnsKey, s.ZeroVariance())
	return s, nil
}

// computeColumnStats はmomentsがfalseの場合、平均・標準偏差を計算せず0のままにする
func computeColumnStats(op string, X mat.Matrix, r, c int, moments bool) (*ColumnStats, error) {
	s := &ColumnStats{
		Min:  make([]float64, c),
		Max:  make([]float64, c),
		Mean: make([]float64, c),
		Std:  make([]float64, c),
	}

	forEachColumn(c, func(j int) {
		col := mat.Col(nil, j, X)
		s.Min[j] = floats.Min(col)
		s.Max[j] = floats.Max(col)
		switch {
		case !moments:
			return
		case r < 2:
			s.Mean[j] = col[0]
			return
		}
		s.Mean[j], s.Std[j] = stat.MeanStdDev(col, nil)
	})

	for k, v := range [][]float64{s.Min, s.Max, s.Mean, s.Std} {
		for j, x := range v {
			if !errors.IsFinite(x) {
				return nil, errors.NewNumericalInstabilityErrorWithContext(op, v, 0, map[string]interface{}{
					"statistic": statNames[k],
					"column":    j,
				})
			}
		}
	}
	return s, nil
}

var statNames = [...]string{"min", "max", "mean", "std"}

// ZeroRange は最小値と最大値が等しい列の添字を返す
func (s *ColumnStats) ZeroRange() []int {
	var cols []int
	for j := range s.Min {
		if s.Max[j] == s.Min[j] {
			cols = append(cols, j)
		}
	}
	return cols
}

// ZeroVariance は標準偏差が0になる列の添字を返す
//
// 範囲0の列に加えて、差が小さすぎて分散がアンダーフローした列も含む。
func (s *ColumnStats) ZeroVariance() []int {
	var cols []int
	for j := range s.Std {
		if s.Max[j] == s.Min[j] || s.Std[j] == 0 {
			cols = append(cols, j)
		}
	}
	return cols
}

// forEachColumn はfn(j)を全ての列について呼び出す。列数が多い場合は並列に実行する。
// fnは自分の列jにだけ書き込むこと。
func forEachColumn(c int, fn func(j int)) {
	parallel.ParallelizeWithThreshold(c, parallelColumnThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			fn(j)
		}
	})
}

// indexSet は列の添字集合を判定用のスライスに変換する
func indexSet(c int, cols []int) []bool {
	set := make([]bool, c)
	for _, j := range cols {
		set[j] = true
	}
	return set
}
