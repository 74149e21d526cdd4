package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

func TestChainMinMaxStandard(t *testing.T) {
	got, err := From(mustDense(t, referenceRows)).MinMaxScale().StandardScale().Result()
	require.NoError(t, err)

	want := [][]float64{
		{-1.024695, -1.024695},
		{-0.439155, -0.439155},
		{0.146385, 0.146385},
		{1.317465, 1.317465},
	}
	assertMatrixApprox(t, want, got, 1e-5)
}

func TestChainMinMaxStandardBinarize(t *testing.T) {
	X := mustDense(t, referenceRows)

	got, err := From(X).MinMaxScale().StandardScale().Binarize(0).Result()
	require.NoError(t, err)

	want := mustDense(t, [][]float64{{0, 0}, {0, 0}, {1, 1}, {1, 1}})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
}

func TestChainMatchesSequentialCalls(t *testing.T) {
	X := randomMatrix(9, 60, 5)

	chained, err := From(X).
		RangeScale(-2, 2).
		CustomScale(0.5, 3).
		MinMaxScale().
		StandardScale().
		Binarize(0.1).
		Result()
	require.NoError(t, err)

	step1, err := RangeScale(X, -2, 2)
	require.NoError(t, err)
	step2, err := CustomScale(step1, 0.5, 3)
	require.NoError(t, err)
	step3, err := MinMaxScale(step2)
	require.NoError(t, err)
	step4, err := StandardScale(step3)
	require.NoError(t, err)
	step5, err := Binarize(step4, 0.1)
	require.NoError(t, err)

	assert.True(t, mat.Equal(step5, chained))
}

func TestChainBranchesAreIndependent(t *testing.T) {
	X := mustDense(t, referenceRows)
	base := From(X).MinMaxScale()

	a, err := base.Binarize(0.5).Result()
	require.NoError(t, err)
	b, err := base.CustomScale(0, 10).Result()
	require.NoError(t, err)
	c, err := base.Result()
	require.NoError(t, err)

	assertMatrixApprox(t, [][]float64{{0, 0}, {0, 0}, {1, 1}, {1, 1}}, a, 0)
	assertMatrixApprox(t, [][]float64{{0, 0}, {2.5, 2.5}, {5, 5}, {10, 10}}, b, 1e-12)
	assertMatrixApprox(t, [][]float64{{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {1, 1}}, c, 0)
	assert.Equal(t, 1, base.Steps())
	assert.Equal(t, -1.0, X.At(0, 0), "input must not change")
}

func TestChainStickyError(t *testing.T) {
	c := From(mustDense(t, referenceRows)).MinMaxScale().Binarize(nanValue()).StandardScale()

	require.Error(t, c.Err())
	assert.Equal(t, 1, c.Steps(), "steps after the failure are skipped")
	assert.Contains(t, c.Err().Error(), "chain step 1 (Binarize)")

	out, err := c.Result()
	assert.Nil(t, out)
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestChainFromInvalidInput(t *testing.T) {
	_, err := From(nil).MinMaxScale().Result()
	assert.True(t, errors.Is(err, errors.ErrNilMatrix))
}

func TestChainWithoutStepsReturnsCopy(t *testing.T) {
	X := mustDense(t, referenceRows)

	got, err := From(X).Result()
	require.NoError(t, err)
	assert.True(t, mat.Equal(X, got))
	assert.NotSame(t, X, got)
}

func TestChainApply(t *testing.T) {
	X := mustDense(t, referenceRows)

	got, err := From(X).Apply(NewMinMaxScaler([2]float64{-3, 5})).Apply(NewBinarizer(0)).Result()
	require.NoError(t, err)
	assertMatrixApprox(t, [][]float64{{0, 0}, {0, 0}, {1, 1}, {1, 1}}, got, 0)

	_, err = From(X).Apply(nil).Result()
	var vErr *errors.ValueError
	assert.True(t, errors.As(err, &vErr))
}
