package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

func TestMinMaxScale(t *testing.T) {
	X := mustDense(t, referenceRows)

	got, err := MinMaxScale(X)
	require.NoError(t, err)

	want := mustDense(t, [][]float64{{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {1, 1}})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestMinMaxScaleRangeProperties(t *testing.T) {
	X := randomMatrix(1, 50, 6)

	got, err := MinMaxScale(X)
	require.NoError(t, err)

	r, c := got.Dims()
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, got)
		orig := mat.Col(nil, j, X)
		minIdx, maxIdx := 0, 0
		for i := 0; i < r; i++ {
			assert.GreaterOrEqual(t, col[i], 0.0)
			assert.LessOrEqual(t, col[i], 1.0)
			if orig[i] < orig[minIdx] {
				minIdx = i
			}
			if orig[i] > orig[maxIdx] {
				maxIdx = i
			}
		}
		// 最小値の行は0、最大値の行は1になる
		assert.Equal(t, 0.0, col[minIdx], "column %d", j)
		assert.Equal(t, 1.0, col[maxIdx], "column %d", j)
	}
}

func TestMinMaxScaleFixedPoint(t *testing.T) {
	once, err := MinMaxScale(randomMatrix(2, 30, 4))
	require.NoError(t, err)

	twice, err := MinMaxScale(once)
	require.NoError(t, err)

	assert.True(t, mat.Equal(once, twice))
}

func TestMinMaxScaleDegenerateColumn(t *testing.T) {
	warnings := captureWarnings(t)
	X := mustDense(t, [][]float64{{3, 1}, {3, 2}, {3, 5}})

	got, err := MinMaxScale(X)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, mat.Col(nil, 0, got))
	assert.Equal(t, []float64{0, 0.25, 1}, mat.Col(nil, 1, got))
	assertAllFinite(t, got)

	ws := warnings()
	require.Len(t, ws, 1)
	var dw *errors.DegenerateColumnWarning
	require.True(t, errors.As(ws[0], &dw))
	assert.Equal(t, "MinMaxScale", dw.Op)
	assert.Equal(t, []int{0}, dw.Columns)
}

func TestMinMaxScaleOverflowingRange(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		-math.MaxFloat64, 1,
		0, 2,
		math.MaxFloat64, 3,
	})

	got, err := MinMaxScale(X)
	require.NoError(t, err)
	assertAllFinite(t, got)
	assertMatrixApprox(t, [][]float64{{0, 0}, {0.5, 0.5}, {1, 1}}, got, 0)

	ranged, err := RangeScale(X, -1, 1)
	require.NoError(t, err)
	assertMatrixApprox(t, [][]float64{{-1, -1}, {0, 0}, {1, 1}}, ranged, 0)

	chained, err := From(X).MinMaxScale().Result()
	require.NoError(t, err)
	assert.True(t, mat.Equal(got, chained))
}

func TestRangeScaleOverflowingTarget(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {5}, {10}})

	got, err := RangeScale(X, -math.MaxFloat64, math.MaxFloat64)
	require.NoError(t, err)
	assertAllFinite(t, got)
	assertMatrixApprox(t, [][]float64{{-math.MaxFloat64}, {0}, {math.MaxFloat64}}, got, 0)
}

func TestMinMaxScaleSingleRow(t *testing.T) {
	captureWarnings(t)
	got, err := MinMaxScale(mustDense(t, [][]float64{{4, -2, 7}}))
	require.NoError(t, err)
	assertMatrixApprox(t, [][]float64{{0, 0, 0}}, got, 0)
}

func TestMinMaxScaleDoesNotMutateInput(t *testing.T) {
	X := mustDense(t, referenceRows)
	before := mat.DenseCopyOf(X)

	_, err := MinMaxScale(X)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, X))
}

func TestRangeScale(t *testing.T) {
	got, err := RangeScale(mustDense(t, referenceRows), -3, 5)
	require.NoError(t, err)

	want := mustDense(t, [][]float64{{-3, -3}, {-1, -1}, {1, 1}, {5, 5}})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestRangeScaleMatchesMinMaxScale(t *testing.T) {
	X := randomMatrix(3, 20, 5)

	a, err := RangeScale(X, 0, 1)
	require.NoError(t, err)
	b, err := MinMaxScale(X)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b))
}

func TestRangeScaleDegenerateUsesLowerBound(t *testing.T) {
	captureWarnings(t)
	got, err := RangeScale(mustDense(t, [][]float64{{1, 0}, {1, 4}}), -2, 2)
	require.NoError(t, err)
	assertMatrixApprox(t, [][]float64{{-2, -2}, {-2, 2}}, got, 0)
}

func TestRangeScaleInvalidRange(t *testing.T) {
	X := mustDense(t, referenceRows)
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"equal bounds", 1, 1},
		{"reversed", 2, -2},
		{"nan", nanValue(), 1},
		{"inf", 0, infValue()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RangeScale(X, tt.lo, tt.hi)
			var vErr *errors.ValidationError
			assert.True(t, errors.As(err, &vErr), "got %v", err)
		})
	}
}

func TestMinMaxScaler(t *testing.T) {
	scaler := NewMinMaxScalerDefault()
	assert.Equal(t, "MinMaxScaler(feature_range=[0, 1])", scaler.String())
	assert.Equal(t, [2]float64{0, 1}, scaler.GetParams()["feature_range"])

	X := mustDense(t, referenceRows)
	got, err := scaler.Transform(X)
	require.NoError(t, err)
	want, err := MinMaxScale(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))

	custom := NewMinMaxScaler([2]float64{-3, 5})
	got, err = custom.Transform(X)
	require.NoError(t, err)
	assertMatrixApprox(t, [][]float64{{-3, -3}, {-1, -1}, {1, 1}, {5, 5}}, got, 0)
}
