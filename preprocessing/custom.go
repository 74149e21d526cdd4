package preprocessing

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// CustomScaler は利用者が指定したアフィン変換 (x + Offset) * Factor を全要素に適用する
//
// 統計量は計算しない。Factorが0の場合は全要素が0になるが、エラーではない。
type CustomScaler struct {
	// Offset は先に加算する値
	Offset float64

	// Factor は加算後に掛ける値
	Factor float64
}

// NewCustomScaler は新しいCustomScalerを作成する
func NewCustomScaler(offset, factor float64) *CustomScaler {
	return &CustomScaler{Offset: offset, Factor: factor}
}

// Transform は全要素に (x + Offset) * Factor を適用する
func (s *CustomScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	return customScale("CustomScaler.Transform", X, s.Offset, s.Factor)
}

// GetParams はスケーラーのパラメータを取得する
func (s *CustomScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"offset": s.Offset,
		"factor": s.Factor,
	}
}

// String はスケーラーの文字列表現を返す
func (s *CustomScaler) String() string {
	return fmt.Sprintf("CustomScaler(offset=%g, factor=%g)", s.Offset, s.Factor)
}

// CustomScale は全要素に (x + offset) * factor を適用する
//
// パラメータ:
//   - offset: 先に加算する値
//   - factor: 加算後に掛ける値
//
// 戻り値:
//   - *mat.Dense: Xと同じ形状の新しい行列
//   - error: Xが空、またはoffset・factorがNaN・Infの場合
func CustomScale(X mat.Matrix, offset, factor float64) (*mat.Dense, error) {
	return customScale("CustomScale", X, offset, factor)
}

func customScale(op string, X mat.Matrix, offset, factor float64) (*mat.Dense, error) {
	start := time.Now()
	if err := checkFiniteParam("offset", offset); err != nil {
		return nil, err
	}
	if err := checkFiniteParam("factor", factor); err != nil {
		return nil, err
	}
	r, c, err := checkInput(op, X)
	if err != nil {
		return nil, err
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, v float64) float64 {
		return (X.At(i, j) + offset) * factor
	}, result)

	report(op, r, c, start, nil, 0)
	return result, nil
}
