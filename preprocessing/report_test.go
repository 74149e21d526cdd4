package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/prepro/core/parallel"
	"github.com/YuminosukeSato/prepro/pkg/log"
)

// captureDebugLogs はパッケージのロガーをデバッグレベルのTestLoggerに差し替える
func captureDebugLogs(t *testing.T) *log.TestLogger {
	t.Helper()
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	prev := log.SetProvider(provider)
	t.Cleanup(func() { log.SetProvider(prev) })
	return provider.Logger()
}

func TestReportLogsDegenerateColumnIndexes(t *testing.T) {
	captureWarnings(t)
	logger := captureDebugLogs(t)

	_, err := MinMaxScale(mustDense(t, [][]float64{{1, 5, 0}, {2, 5, 0}}))
	require.NoError(t, err)

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "transform applied", entry["message"])
	assert.Equal(t, "MinMaxScale", entry[log.TransformKey])
	assert.Equal(t, log.OperationTransform, entry[log.OperationKey])
	assert.Equal(t, []interface{}{1.0, 2.0}, entry[log.DegenerateColumnsKey])
	assert.NotContains(t, entry, log.WorkersKey, "narrow matrices run inline")
}

func TestReportLogsWorkersForWideMatrices(t *testing.T) {
	logger := captureDebugLogs(t)
	c := parallelColumnThreshold + 1

	_, err := ComputeColumnStats(randomMatrix(3, 4, c))
	require.NoError(t, err)

	assert.True(t, logger.ContainsMessage("column statistics computed"))
	assert.True(t, logger.ContainsField(log.OperationKey, log.OperationStats))
	assert.True(t, logger.ContainsField(log.WorkersKey, float64(parallel.Workers(c))))
}
