package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utterance(start, end Timestamp, speaker int) DialogUtterance {
	valence := NewTimeSeries("valence", []TimeSeriesPoint{{Time: start, Value: 0}, {Time: end - 0.01, Value: 1}})
	return NewDialogUtterance("hello", start, end, UtteranceMetrics{Valence: valence}, speaker)
}

func newDialog(utterances ...DialogUtterance) *DialogData {
	volume := NewTimeSeries("volume", []TimeSeriesPoint{{Time: 0, Value: 0}, {Time: 1, Value: 0.3}})
	return NewDialogData(60, GeneralMetrics{Volume: volume}, utterances)
}

func TestNewDialogUtterance_StoresVerbatim(t *testing.T) {
	valence := NewTimeSeries("v", nil)
	u := NewDialogUtterance("text", 9, 3, UtteranceMetrics{Valence: valence}, 7)

	assert.Equal(t, "text", u.Text)
	assert.Equal(t, 9.0, u.StartTime)
	assert.Equal(t, 3.0, u.EndTime)
	assert.Equal(t, valence, u.Metrics.Valence)
	assert.Equal(t, 7, u.SpeakerIdx)
}

func TestNewDialogData_StoresVerbatim(t *testing.T) {
	d := newDialog(utterance(1, 2, 0))

	assert.Equal(t, 60.0, d.Duration)
	assert.Equal(t, "volume", d.GeneralMetrics.Volume.Name)
	require.Len(t, d.Utterances, 1)
}

func TestMakeSegments_OrderAndBounds(t *testing.T) {
	d := newDialog(utterance(2, 9, 0), utterance(12, 20, 1), utterance(25, 31, 0))
	segments := d.MakeSegments()

	require.Len(t, segments, 3)
	for i, u := range d.Utterances {
		assert.Equal(t, u.StartTime, segments[i].Start)
		assert.Equal(t, u.EndTime, segments[i].End)
	}
}

func TestMakeSegments_Colors(t *testing.T) {
	d := newDialog(utterance(1, 2, 0), utterance(3, 4, 1), utterance(5, 6, 2), utterance(7, 8, -1))
	segments := d.MakeSegments()

	assert.Equal(t, "rgba(255, 0, 0, 0.5)", segments[0].Color)
	assert.Equal(t, "rgba(0, 0, 255, 0.5)", segments[1].Color)
	assert.Equal(t, "rgba(0, 0, 255, 0.5)", segments[2].Color)
	assert.Equal(t, "rgba(0, 0, 255, 0.5)", segments[3].Color)
}

func TestMakeSegments_Empty(t *testing.T) {
	d := newDialog()
	segments := d.MakeSegments()
	assert.NotNil(t, segments)
	assert.Empty(t, segments)
}

func TestMakeSegments_RecomputedEachCall(t *testing.T) {
	d := newDialog(utterance(1, 2, 0))
	first := d.MakeSegments()
	first[0].Color = "changed"

	second := d.MakeSegments()
	assert.Equal(t, SpeakerZeroColor, second[0].Color)
}

func TestLastUtteranceEnd(t *testing.T) {
	assert.Equal(t, 0.0, newDialog().LastUtteranceEnd())
	assert.Equal(t, 8.0, newDialog(utterance(1, 2, 0), utterance(3, 8, 1)).LastUtteranceEnd())
}

func TestValidate_WellFormed(t *testing.T) {
	d := newDialog(utterance(2, 9, 0), utterance(12, 20, 1))
	assert.NoError(t, d.Validate())
}

func TestValidate_UtterancePastDurationIsAccepted(t *testing.T) {
	d := newDialog(utterance(50, 75, 0))
	assert.NoError(t, d.Validate())
}

func TestValidate_EndNotAfterStart(t *testing.T) {
	d := newDialog(NewDialogUtterance("x", 5, 5, UtteranceMetrics{}, 0))
	err := d.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "utterances[0]", vErr.Field)
}

func TestValidate_Overlap(t *testing.T) {
	d := newDialog(utterance(2, 9, 0), utterance(8, 12, 1))
	err := d.Validate()

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "utterances[1]", vErr.Field)
}

func TestValidate_UnorderedPoints(t *testing.T) {
	d := newDialog()
	d.GeneralMetrics.Volume = NewTimeSeries("volume", []TimeSeriesPoint{{Time: 2}, {Time: 1}})
	err := d.Validate()

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "generalMetrics.volume.points[1]", vErr.Field)
}

func TestValidate_ValenceOutsideUtterance(t *testing.T) {
	tests := []struct {
		name   string
		points []TimeSeriesPoint
	}{
		{"before start", []TimeSeriesPoint{{Time: 1.5}, {Time: 3}}},
		{"after end", []TimeSeriesPoint{{Time: 2}, {Time: 9.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewDialogUtterance("x", 2, 9, UtteranceMetrics{Valence: NewTimeSeries("valence", tt.points)}, 0)
			err := newDialog(u).Validate()

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "utterances[0].metrics.valence", vErr.Field)
		})
	}
}

func TestValidate_ValenceOnUtteranceBounds(t *testing.T) {
	valence := NewTimeSeries("valence", []TimeSeriesPoint{{Time: 2}, {Time: 9}})
	d := newDialog(NewDialogUtterance("x", 2, 9, UtteranceMetrics{Valence: valence}, 0))
	assert.NoError(t, d.Validate())
}
