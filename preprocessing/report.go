package preprocessing

import (
	"context"
	"time"

	"github.com/YuminosukeSato/prepro/core/parallel"
	"github.com/YuminosukeSato/prepro/pkg/errors"
	"github.com/YuminosukeSato/prepro/pkg/log"
)

// report は変換の完了をデバッグログに残し、定数列があれば警告を出す
func report(op string, r, c int, start time.Time, degenerate []int, fill float64) {
	if len(degenerate) > 0 {
		errors.Warn(errors.NewDegenerateColumnWarning(op, degenerate, fill))
	}
	logApplied("transform applied", op, log.OperationTransform, r, c, start, log.DegenerateColumnsKey, degenerate)
}

// logApplied は1回の処理の規模と所要時間をデバッグログに出す
func logApplied(msg, op, operation string, r, c int, start time.Time, fields ...any) {
	logger := log.GetLoggerWithName("preprocessing")
	if !logger.Enabled(context.Background(), log.LevelDebug) {
		return
	}
	fields = append(fields,
		log.TransformKey, op,
		log.OperationKey, operation,
		log.PhaseKey, log.PhasePreprocessing,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	if c > parallelColumnThreshold {
		fields = append(fields, log.WorkersKey, parallel.Workers(c))
	}
	logger.Debug(msg, fields...)
}
