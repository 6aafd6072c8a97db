package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"umc/internal/loader"
	"umc/internal/models"
	"umc/internal/structures"
	"umc/internal/testutil"
	"umc/internal/workbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const usageJSON = `[
	{
		"day": "2025-06-01",
		"user_login": "alice",
		"user_initiated_interaction_count": 12,
		"code_generation_activity_count": 7,
		"loc_added_sum": 30,
		"totals_by_ide": [{"ide": "vscode", "loc_added_sum": 30}]
	},
	{
		"day": "2025-06-03",
		"user_login": "bob",
		"user_initiated_interaction_count": 4,
		"code_generation_activity_count": 2,
		"loc_added_sum": 5
	}
]`

func writeUsageFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "usage.json")
	require.NoError(t, os.WriteFile(path, []byte(usageJSON), 0644))
	return path
}

// newConverter wires a service with the real loader and writer.
func newConverter(t *testing.T, conf *structures.Config) (ConverterServiceInterface, *testutil.MockLogger, *testutil.MockMetrics) {
	t.Helper()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	dec, err := loader.NewDecompressor()
	require.NoError(t, err)
	svc := NewConverterService(conf, loader.NewLoader(dec, logger, metrics), workbook.NewWriter(logger), logger, metrics)
	t.Cleanup(svc.Close)
	return svc, logger, metrics
}

func TestConverterService_Convert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeUsageFile(t, dir)
	svc, _, metrics := newConverter(t, &structures.Config{})

	summary, err := svc.Convert(input, "")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 2, summary.UniqueUsers)
	assert.Equal(t, "2025-06-01", summary.FirstDay)
	assert.Equal(t, "2025-06-03", summary.LastDay)
	assert.Equal(t, 16, summary.TotalInteractions)
	assert.Equal(t, 9, summary.TotalGenerations)
	assert.Equal(t, 35, summary.TotalLOCAdded)

	assert.Equal(t, dir, filepath.Dir(summary.OutputPath))
	assert.Regexp(t, `^usage_converted_\d{8}_\d{6}\.xlsx$`, filepath.Base(summary.OutputPath))

	file, err := excelize.OpenFile(summary.OutputPath)
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, []string{"Main_Metrics", "IDE_Totals"}, file.GetSheetList())

	assert.Equal(t, 2, metrics.RecordsLoaded)
	assert.Equal(t, 2, metrics.SheetRows["Main_Metrics"])
	assert.Equal(t, 1, metrics.SheetRows["IDE_Totals"])
	assert.Equal(t, 0, metrics.SheetRows["Feature_Totals"])
	assert.Len(t, metrics.RunDurations, 1)
	assert.Equal(t, 1, metrics.FlushCalls)
}

func TestConverterService_Convert_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "usage.json")
	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))
	svc, _, _ := newConverter(t, &structures.Config{})

	_, err := svc.Convert(input, "")
	require.ErrorIs(t, err, ErrNoRecords)

	// Nothing but the input should exist
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestConverterService_Convert_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeUsageFile(t, dir)
	output := filepath.Join(dir, "report.xlsx")
	svc, _, _ := newConverter(t, &structures.Config{})

	summary, err := svc.Convert(input, output)
	require.NoError(t, err)
	assert.Equal(t, output, summary.OutputPath)

	_, err = os.Stat(output)
	assert.NoError(t, err)
}

func TestConverterService_Convert_OutputDirOverride(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	input := writeUsageFile(t, inputDir)
	svc, _, _ := newConverter(t, &structures.Config{
		Output: structures.OutputConfig{Dir: outputDir},
	})

	summary, err := svc.Convert(input, "")
	require.NoError(t, err)
	assert.Equal(t, outputDir, filepath.Dir(summary.OutputPath))
}

func TestConverterService_Convert_WriterErrorWrapped(t *testing.T) {
	ldr := &testutil.MockLoader{Records: []models.Record{{"user_login": "alice"}}}
	writer := &testutil.MockWriter{Err: assert.AnError}
	svc := NewConverterService(&structures.Config{}, ldr, writer, &testutil.MockLogger{}, &testutil.MockMetrics{})

	_, err := svc.Convert("usage.json", "out.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing workbook out.xlsx")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConverterService_Convert_FlushErrorOnlyWarns(t *testing.T) {
	ldr := &testutil.MockLoader{Records: []models.Record{{"user_login": "alice"}}}
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{FlushErr: assert.AnError}
	svc := NewConverterService(&structures.Config{}, ldr, &testutil.MockWriter{}, logger, metrics)

	_, err := svc.Convert("usage.json", "out.xlsx")
	require.NoError(t, err)
	require.Len(t, logger.Messages("warn"), 1)
	assert.Contains(t, logger.Messages("warn")[0], "metrics textfile")
}

func TestConverterService_DeriveOutputPath(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	cs := &ConverterService{conf: &structures.Config{}}

	tests := []struct {
		input    string
		expected string
	}{
		{"data/usage.json", "data/usage_converted_20250615_103045.xlsx"},
		{"data/usage.json.gz", "data/usage_converted_20250615_103045.xlsx"},
		{"data/usage.ndjson.zst", "data/usage_converted_20250615_103045.xlsx"},
		{"usage", "usage_converted_20250615_103045.xlsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cs.deriveOutputPath(tt.input, now))
	}
}

func TestConverterService_DeriveOutputPath_OutputDir(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	cs := &ConverterService{conf: &structures.Config{
		Output: structures.OutputConfig{Dir: "/tmp/reports"},
	}}

	assert.Equal(t, "/tmp/reports/usage_converted_20250615_103045.xlsx",
		cs.deriveOutputPath("data/usage.json", now))
}

func TestConverterService_Close_ClosesLoader(t *testing.T) {
	ldr := &testutil.MockLoader{}
	svc := NewConverterService(&structures.Config{}, ldr, &testutil.MockWriter{}, &testutil.MockLogger{}, &testutil.MockMetrics{})
	svc.Close()
	assert.True(t, ldr.Closed)
}
