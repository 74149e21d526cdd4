package preprocessing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/prepro/core/model"
	"github.com/YuminosukeSato/prepro/pkg/errors"
	"github.com/YuminosukeSato/prepro/pkg/log"
)

// Pipeline は複数のTransformerを順に適用する
//
// 各ステップの出力が次のステップの入力になる。Pipeline自身もTransformerなので
// 入れ子にできる。状態は持たず、同じPipelineを並行して使ってよい。
type Pipeline struct {
	steps       []model.Transformer
	logger      log.Logger
	finiteCheck bool
	name        string
}

// NewPipeline は新しいPipelineを作成する
//
// 使用例:
//
//	p := preprocessing.NewPipeline([]model.Transformer{
//	    preprocessing.NewMinMaxScalerDefault(),
//	    preprocessing.NewStandardScalerDefault(),
//	    preprocessing.NewBinarizer(0),
//	}, preprocessing.WithFiniteCheck(true))
//	out, err := p.Transform(X)
func NewPipeline(steps []model.Transformer, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		steps: append([]model.Transformer(nil), steps...),
		name:  "Pipeline",
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.GetLoggerWithName("preprocessing.pipeline")
	}
	return p
}

// Steps はステップのコピーを返す
func (p *Pipeline) Steps() []model.Transformer {
	return append([]model.Transformer(nil), p.steps...)
}

// Transform は全てのステップを順に適用する
//
// ステップ内のpanic（gonumの形状エラーなど）はPanicErrorとして返す。
// いずれかのステップが失敗した場合、途中結果は返さない。
func (p *Pipeline) Transform(X mat.Matrix) (out *mat.Dense, err error) {
	op := p.name + ".Transform"
	defer errors.Recover(&err, op)

	if len(p.steps) == 0 {
		return nil, errors.NewValueError(op, "no steps configured")
	}
	r, c, err := checkInput(op, X)
	if err != nil {
		return nil, err
	}

	logger := p.logger.With(
		log.ComponentKey, "preprocessing.pipeline",
		log.OperationKey, log.OperationPipeline,
	)
	debug := logger.Enabled(context.Background(), log.LevelDebug)
	start := time.Now()

	var current mat.Matrix = X
	for i, step := range p.steps {
		if step == nil {
			return nil, errors.NewValueError(op, fmt.Sprintf("step %d is nil", i))
		}
		name := stepName(step)

		next, stepErr := p.runStep(op, i, step, current)
		if stepErr != nil {
			fields := []any{
				log.StepKey, i,
				log.TransformKey, name,
				log.ErrorTypeKey, fmt.Sprintf("%T", stepErr),
			}
			if code := errorCode(stepErr); code != "" {
				fields = append(fields, log.ErrorCodeKey, code)
			}
			logger.Error("pipeline step failed", append([]any{stepErr}, fields...)...)
			return nil, errors.Wrapf(stepErr, "%s step %d (%s)", p.name, i, name)
		}

		if nr, nc := next.Dims(); nr != r || nc != c {
			shapeErr := shapeChangeError(op, i, name, r, c, nr, nc)
			logger.Error("pipeline step changed the shape", shapeErr,
				log.StepKey, i,
				log.TransformKey, name,
				log.ErrorCodeKey, log.ErrorDimensionMismatch,
				log.SuggestionKey, "each step must return a matrix with the same shape as its input",
			)
			return nil, shapeErr
		}
		if p.finiteCheck {
			if err := errors.CheckMatrix(name, next, r, c, i); err != nil {
				logger.Error("pipeline step produced non-finite values", err,
					log.StepKey, i,
					log.TransformKey, name,
					log.ErrorCodeKey, log.ErrorNumerical,
				)
				return nil, err
			}
		}

		if debug {
			fields := []any{log.StepKey, i, log.TransformKey, name}
			if pg, ok := step.(model.ParameterGetter); ok {
				fields = append(fields, log.ParamsKey, pg.GetParams())
			}
			logger.Debug("pipeline step done", fields...)
		}
		current = next
	}

	if debug {
		logger.Debug("pipeline done",
			log.StepsKey, len(p.steps),
			log.SamplesKey, r,
			log.FeaturesKey, c,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return current.(*mat.Dense), nil
}

// runStep は1ステップを実行し、nilの結果をエラーとして扱う。
// ステップ内のpanicはPanicErrorとして返す。
func (p *Pipeline) runStep(op string, i int, step model.Transformer, X mat.Matrix) (out *mat.Dense, err error) {
	defer errors.Recover(&err, op)

	out, err = step.Transform(X)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.NewValueError(op, fmt.Sprintf("step %d returned a nil matrix", i))
	}
	return out, nil
}

// shapeChangeError は行数・列数のうち変わった軸についてのエラーを返す
func shapeChangeError(op string, i int, name string, r, c, nr, nc int) error {
	dimErr := errors.NewDimensionError(name, c, nc, 1)
	if nr != r {
		dimErr = errors.NewDimensionError(name, r, nr, 0)
	}
	return errors.NewTransformError(op, fmt.Sprintf("step %d (%s) changed the shape to %dx%d", i, name, nr, nc), dimErr)
}

// errorCode はログに付けるエラーコードを返す。該当しなければ空文字列
func errorCode(err error) string {
	var (
		panicErr *errors.PanicError
		dimErr   *errors.DimensionError
		numErr   *errors.NumericalInstabilityError
		valErr   *errors.ValidationError
		valueErr *errors.ValueError
	)
	switch {
	case errors.As(err, &panicErr):
		return log.ErrorPanic
	case errors.As(err, &dimErr):
		return log.ErrorDimensionMismatch
	case errors.As(err, &numErr):
		return log.ErrorNumerical
	case errors.Is(err, errors.ErrEmptyData), errors.Is(err, errors.ErrNilMatrix):
		return log.ErrorEmptyData
	case errors.As(err, &valErr), errors.As(err, &valueErr):
		return log.ErrorInvalidInput
	}
	return ""
}

// GetParams はPipelineのパラメータを取得する
func (p *Pipeline) GetParams() map[string]interface{} {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = stepName(step)
	}
	return map[string]interface{}{
		"steps":        names,
		"finite_check": p.finiteCheck,
	}
}

// String はPipelineの文字列表現を返す
func (p *Pipeline) String() string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = stepName(step)
	}
	return fmt.Sprintf("%s(steps=[%s])", p.name, strings.Join(names, ", "))
}
