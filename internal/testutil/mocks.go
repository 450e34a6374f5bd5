package testutil

import (
	"dialogd/internal/fakedata"
	"dialogd/internal/models"
	"dialogd/internal/providers"
	"sync"
	"time"
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

// Entries returns a snapshot of the recorded log lines.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockDialogService implements services.DialogServiceInterface with a
// predictable seed sequence: every Rotate adds one to the current seed.
type MockDialogService struct {
	mu        sync.Mutex
	Seed      int64
	Generated []int64
	Rotations int64
}

func (m *MockDialogService) Generate(seed int64) *models.DialogData {
	m.mu.Lock()
	m.Generated = append(m.Generated, seed)
	m.mu.Unlock()
	return fakedata.GenerateSeeded(seed)
}

func (m *MockDialogService) CurrentSeed() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Seed
}

func (m *MockDialogService) Rotate() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Seed++
	m.Rotations++
	return m.Seed
}

func (m *MockDialogService) GetGeneratedCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Generated))
}

func (m *MockDialogService) GetRotationCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Rotations
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements codec.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    map[string]int
	CacheHits   int
	CacheMisses int
	Generations int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Requests: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObserveGenerationDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Generations++
}
func (m *MockMetrics) ObserveDialogShape(_ int, _ float64) {}
