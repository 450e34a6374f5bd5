package fakedata

import (
	"dialogd/internal/models"
	"strconv"
)

const (
	minDuration = 60
	maxDuration = 120

	minUtterances = 2
	maxUtterances = 7

	minGap = 2
	maxGap = 10

	minSpan = 5
	maxSpan = 15

	minStep = -10
	maxStep = 10

	// SampleInterval is the spacing of generated series points in seconds.
	SampleInterval = 0.01
	stepScale      = 0.1
)

// Generator builds plausible-looking dialogs from a Source.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// draw takes a value from the source and clamps it into [min, max].
func (g *Generator) draw(min, max int) int {
	return clamp(g.src.Between(min, max), min, max)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Dialog generates a dialog with strictly alternating, non-overlapping utterances.
// The last utterance may end after the dialog duration.
func (g *Generator) Dialog() *models.DialogData {
	duration := float64(g.draw(minDuration, maxDuration))
	count := g.draw(minUtterances, maxUtterances)

	utterances := make([]models.DialogUtterance, 0, count)
	var lastEnd models.Timestamp
	for i := 0; i < count; i++ {
		start := lastEnd + float64(g.draw(minGap, maxGap))
		end := start + float64(g.draw(minSpan, maxSpan))
		lastEnd = end

		valence := g.Series("valence for utterance"+strconv.Itoa(i), end-start, start)
		utterances = append(utterances, models.NewDialogUtterance(
			"Utterance "+strconv.Itoa(i),
			start,
			end,
			models.UtteranceMetrics{Valence: valence},
			i%2,
		))
	}

	volume := g.Series("volume", duration, 0)
	return models.NewDialogData(duration, models.GeneralMetrics{Volume: volume}, utterances)
}

// Series generates an unbounded random walk sampled every SampleInterval
// seconds over [start, start+duration).
func (g *Generator) Series(name string, duration, start models.Timestamp) models.TimeSeries {
	end := start + duration
	points := make([]models.TimeSeriesPoint, 0, max(int(duration/SampleInterval), 0)+1)

	var value float64
	for i := 0; ; i++ {
		position := start + float64(i)*SampleInterval
		if position >= end {
			break
		}
		value += float64(g.draw(minStep, maxStep)) * stepScale
		points = append(points, models.TimeSeriesPoint{Time: position, Value: value})
	}
	return models.NewTimeSeries(name, points)
}

// GenerateFakeDialog returns a freshly generated dialog drawn from a clock-seeded source.
func GenerateFakeDialog() *models.DialogData {
	return NewGenerator(NewRandomSource()).Dialog()
}

// GenerateSeeded returns the dialog determined by seed.
func GenerateSeeded(seed int64) *models.DialogData {
	return NewGenerator(NewSource(uint64(seed))).Dialog()
}
