package preprocessing

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// referenceRows は変換の組み合わせを確認するための基準データ
var referenceRows = [][]float64{{-1, 2}, {-0.5, 6}, {0, 10}, {1, 18}}

func mustDense(t testing.TB, rows [][]float64) *mat.Dense {
	t.Helper()
	X, err := FromRows(rows)
	require.NoError(t, err)
	return X
}

func assertMatrixApprox(t *testing.T, want [][]float64, got mat.Matrix, tol float64) {
	t.Helper()
	r, c := got.Dims()
	require.Equal(t, len(want), r, "rows")
	require.Equal(t, len(want[0]), c, "cols")
	for i := range want {
		row := mat.Row(nil, i, got)
		if !floats.EqualApprox(want[i], row, tol) {
			t.Errorf("row %d = %v, want %v", i, row, want[i])
		}
	}
}

func assertAllFinite(t *testing.T, X mat.Matrix) {
	t.Helper()
	r, c := X.Dims()
	require.NoError(t, errors.CheckMatrix("test", X, r, c, 0))
}

// randomMatrix は再現可能な乱数行列を返す
func randomMatrix(seed int64, r, c int) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()*10 + float64(i%c)
	}
	return mat.NewDense(r, c, data)
}

// captureWarnings はテスト中に発生した警告を集める
func captureWarnings(t *testing.T) func() []error {
	t.Helper()
	var (
		mu  sync.Mutex
		got []error
	)
	errors.SetWarningHandler(func(w error) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, w)
	})
	t.Cleanup(func() { errors.SetWarningHandler(func(error) {}) })
	return func() []error {
		mu.Lock()
		defer mu.Unlock()
		return append([]error(nil), got...)
	}
}

func nanValue() float64 { return math.NaN() }

func infValue() float64 { return math.Inf(1) }
