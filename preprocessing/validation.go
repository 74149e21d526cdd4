package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// checkInput は変換の入口で行列の形状を検証し、行数と列数を返す
func checkInput(op string, X mat.Matrix) (int, int, error) {
	if X == nil {
		return 0, 0, errors.NewTransformError(op, "nil matrix", errors.ErrNilMatrix)
	}
	if d, ok := X.(*mat.Dense); ok && d == nil {
		return 0, 0, errors.NewTransformError(op, "nil matrix", errors.ErrNilMatrix)
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, errors.NewTransformError(op, "empty data", errors.ErrEmptyData)
	}
	return r, c, nil
}

// checkFiniteParam はパラメータがNaN・Infでないことを検証する
func checkFiniteParam(name string, v float64) error {
	if !errors.IsFinite(v) {
		return errors.NewValidationError(name, "must be finite", v)
	}
	return nil
}

// FromRows は [][]float64 から行列を作成する
//
// パラメータ:
//   - rows: 行（サンプル）ごとのスライス。全ての行は同じ長さでなければならない
//
// 戻り値:
//   - *mat.Dense: rowsのコピーを持つ行列
//   - error: 空のデータ、または行の長さが揃っていない場合
//
// 使用例:
//
//	X, err := preprocessing.FromRows([][]float64{{2, 0}, {0, 2}})
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewTransformError("FromRows", "empty data", errors.ErrEmptyData)
	}

	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, errors.NewDimensionError("FromRows", c, len(row), 1)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

// ToRows は行列を [][]float64 にコピーする
func ToRows(X mat.Matrix) ([][]float64, error) {
	r, c, err := checkInput("ToRows", X)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(make([]float64, c), i, X)
	}
	return rows, nil
}
