package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/core/model"
	"github.com/YuminosukeSato/prepro/pkg/errors"
)

func TestFromRows(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	X, err := FromRows(rows)
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, X.At(1, 2))

	// コピーされていること
	rows[0][0] = 100
	assert.Equal(t, 1.0, X.At(0, 0))
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = FromRows([][]float64{{}})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr), "got %v", err)
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 1, dimErr.Got)
	assert.Equal(t, 1, dimErr.Axis)
}

func TestToRows(t *testing.T) {
	rows, err := ToRows(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	_, err = ToRows(nil)
	assert.True(t, errors.Is(err, errors.ErrNilMatrix))
}

func TestTransformsRejectMalformedInput(t *testing.T) {
	var nilDense *mat.Dense
	inputs := map[string]struct {
		X    mat.Matrix
		want error
	}{
		"nil interface": {nil, errors.ErrNilMatrix},
		"nil dense":     {nilDense, errors.ErrNilMatrix},
		"empty dense":   {&mat.Dense{}, errors.ErrEmptyData},
	}
	transforms := map[string]model.TransformerFunc{
		"MinMaxScale":   MinMaxScale,
		"StandardScale": StandardScale,
		"RangeScale":    func(X mat.Matrix) (*mat.Dense, error) { return RangeScale(X, -1, 1) },
		"CustomScale":   func(X mat.Matrix) (*mat.Dense, error) { return CustomScale(X, 1, 2) },
		"Binarize":      func(X mat.Matrix) (*mat.Dense, error) { return Binarize(X, 0) },
	}

	for tname, fn := range transforms {
		for iname, in := range inputs {
			t.Run(tname+"/"+iname, func(t *testing.T) {
				out, err := fn.Transform(in.X)
				assert.Nil(t, out)
				assert.True(t, errors.Is(err, in.want), "got %v", err)

				var tErr *errors.TransformError
				assert.True(t, errors.As(err, &tErr))
			})
		}
	}
}

func TestShapePreserved(t *testing.T) {
	captureWarnings(t)
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {17, 3}}
	transforms := []model.Transformer{
		NewMinMaxScalerDefault(),
		NewStandardScalerDefault(),
		NewCustomScaler(0.5, 3),
		NewBinarizer(0),
	}

	for _, shape := range shapes {
		X := randomMatrix(8, shape[0], shape[1])
		for _, tr := range transforms {
			got, err := tr.Transform(X)
			require.NoError(t, err)
			r, c := got.Dims()
			assert.Equal(t, shape[0], r, "%s rows", tr)
			assert.Equal(t, shape[1], c, "%s cols", tr)
			assert.NotSame(t, X, got)
		}
	}
}
