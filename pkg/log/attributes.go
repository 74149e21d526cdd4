// Package log defines standard attribute keys for preprocessing operations.
//
// Keys follow a hierarchical naming convention (e.g. "data.samples",
// "transform.name") so logs can be filtered consistently.

package log

// Operation context
const (
	// ComponentKey identifies which package is logging.
	// Examples: "preprocessing", "preprocessing.pipeline"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// PhaseKey indicates the lifecycle phase. Always "preprocessing" here.
	PhaseKey = "ml.phase"

	// TransformKey names the transform applied by a step.
	// Examples: "MinMaxScale", "Binarize"
	TransformKey = "transform.name"

	// StepKey is the zero-based index of a step within a pipeline or chain.
	StepKey = "transform.step"

	// StepsKey is the total number of steps in a pipeline.
	StepsKey = "transform.steps"

	// ParamsKey holds the parameters of a transform as a map.
	ParamsKey = "transform.params"
)

// Data shape
const (
	// SamplesKey is the number of rows.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns.
	FeaturesKey = "data.features"

	// DegenerateColumnsKey lists the column indexes with zero range or variance.
	DegenerateColumnsKey = "data.degenerate_columns"

	// WorkersKey is the number of goroutines used for column statistics.
	WorkersKey = "data.workers"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationTransform = "transform"
	OperationStats     = "column_stats"
	OperationPipeline  = "pipeline"

	PhasePreprocessing = "preprocessing"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorNumerical         = "NUMERICAL_INSTABILITY"
	ErrorPanic             = "PANIC"
)
