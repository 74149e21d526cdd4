package log

import (
	"context"
	"log/slog"

	crdb "github.com/cockroachdb/errors"

	"github.com/YuminosukeSato/prepro/pkg/errors"
)

// ErrFmtHandler is a slog handler that adds a stack trace to any record
// carrying an ErrAttr. A recovered panic contributes the goroutine stack
// captured at the panic site and is tagged with ErrorPanic; other errors
// contribute the stack recorded by cockroachdb/errors.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler so records with an "error" attribute
// also carry a "stacktrace" attribute.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err == nil {
		return eh.handler.Handle(ctx, r)
	}

	var panicErr *errors.PanicError
	if errors.As(err, &panicErr) {
		r.AddAttrs(
			slog.String(ErrorCodeKey, ErrorPanic),
			slog.String(OperationKey, panicErr.Operation),
		)
		if panicErr.StackTrace != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, panicErr.StackTrace))
			return eh.handler.Handle(ctx, r)
		}
	}
	if stacktrace := extractStacktrace(err); stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// extractStacktrace returns the first stack recorded along err's chain.
func extractStacktrace(err error) string {
	for ; err != nil; err = crdb.UnwrapOnce(err) {
		if safeDetails := crdb.GetSafeDetails(err).SafeDetails; len(safeDetails) > 0 {
			return safeDetails[0]
		}
	}
	return ""
}
