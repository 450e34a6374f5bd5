package services

import (
	"dialogd/internal/structures"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed int64) *structures.Config {
	return &structures.Config{
		Rotation: structures.RotationConfig{
			Interval: time.Minute,
			Seed:     seed,
		},
	}
}

func newService(seed int64) *DialogService {
	return NewDialogService(testConfig(seed)).(*DialogService)
}

func TestNewDialogService_ConfiguredSeed(t *testing.T) {
	ds := newService(1234)
	assert.Equal(t, int64(1234), ds.CurrentSeed())
}

func TestNewDialogService_RandomSeedWhenUnset(t *testing.T) {
	ds := newService(0)
	assert.NotZero(t, ds.CurrentSeed())
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	ds := newService(1)
	a := ds.Generate(99)
	b := ds.Generate(99)

	require.NotNil(t, a)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
	assert.Equal(t, int64(2), ds.GetGeneratedCount())
}

func TestGenerate_IndependentGraphs(t *testing.T) {
	ds := newService(1)
	a := ds.Generate(5)
	b := ds.Generate(5)

	a.Utterances[0].Text = "changed"
	a.GeneralMetrics.Volume.Points[0].Value = 1e9
	assert.Equal(t, "Utterance 0", b.Utterances[0].Text)
	assert.NotEqual(t, 1e9, b.GeneralMetrics.Volume.Points[0].Value)
}

func TestRotate_ChangesSeed(t *testing.T) {
	ds := newService(7)
	seeds := []int64{7, 7, 8}
	ds.nextSeed = func() int64 {
		s := seeds[0]
		seeds = seeds[1:]
		return s
	}

	assert.Equal(t, int64(8), ds.Rotate())
	assert.Equal(t, int64(8), ds.CurrentSeed())
	assert.Equal(t, int64(1), ds.GetRotationCount())
}

func TestGenerate_ConcurrentCallsCounted(t *testing.T) {
	ds := newService(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			ds.Generate(seed)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, int64(8), ds.GetGeneratedCount())
}
