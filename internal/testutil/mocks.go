package testutil

import (
	"fmt"
	"sync"
	"time"
	"umc/internal/models"
	"umc/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Messages returns the formatted messages recorded at the given level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, fmt.Sprintf(e.Format, e.Args...))
		}
	}
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and records calls.
type MockMetrics struct {
	mu            sync.Mutex
	RecordsLoaded int
	SkippedInputs int
	SheetRows     map[string]int
	RunDurations  []time.Duration
	FlushCalls    int
	FlushErr      error
}

func (m *MockMetrics) AddRecordsLoaded(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordsLoaded += count
}

func (m *MockMetrics) IncSkippedInputs() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SkippedInputs++
}

func (m *MockMetrics) SetSheetRows(sheet string, rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SheetRows == nil {
		m.SheetRows = make(map[string]int)
	}
	m.SheetRows[sheet] = rows
}

func (m *MockMetrics) ObserveRunDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunDurations = append(m.RunDurations, duration)
}

func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FlushCalls++
	return m.FlushErr
}

// MockDecompressor implements interfaces.DecompressorInterface with injectable behavior.
type MockDecompressor struct {
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockDecompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockDecompressor) Close() {
	m.Closed = true
}

// MockLoader implements interfaces.LoaderInterface.
type MockLoader struct {
	mu        sync.Mutex
	Records   []models.Record
	LoadCalls []string
	Closed    bool
}

func (m *MockLoader) Load(path string) []models.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, path)
	return m.Records
}

func (m *MockLoader) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

// MockWriter implements workbook.WriterInterface.
type MockWriter struct {
	mu     sync.Mutex
	Writes []WriteCall
	Err    error
}

type WriteCall struct {
	Path   string
	Tables []*models.Table
}

func (m *MockWriter) Write(path string, tables []*models.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes = append(m.Writes, WriteCall{Path: path, Tables: tables})
	return m.Err
}
