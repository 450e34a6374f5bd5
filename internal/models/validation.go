package models

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("dialog validation failed")

// ValidationError describes the first ordering problem found in a dialog.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate checks the ordering invariants that generated dialogs satisfy,
// including valence points lying within their utterance.
// Construction never calls it. An utterance ending after Duration is accepted.
func (d *DialogData) Validate() error {
	if err := validateSeries("generalMetrics.volume", d.GeneralMetrics.Volume); err != nil {
		return err
	}
	var prevEnd Timestamp
	for i, u := range d.Utterances {
		field := fmt.Sprintf("utterances[%d]", i)
		if u.EndTime <= u.StartTime {
			return &ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("endTime %v is not after startTime %v", u.EndTime, u.StartTime),
			}
		}
		if i > 0 && u.StartTime <= prevEnd {
			return &ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("startTime %v overlaps previous utterance ending at %v", u.StartTime, prevEnd),
			}
		}
		if err := validateSeries(field+".metrics.valence", u.Metrics.Valence); err != nil {
			return err
		}
		if first, last, ok := u.Metrics.Valence.Span(); ok && (first < u.StartTime || last > u.EndTime) {
			return &ValidationError{
				Field:  field + ".metrics.valence",
				Reason: fmt.Sprintf("points span [%v, %v] outside utterance [%v, %v]", first, last, u.StartTime, u.EndTime),
			}
		}
		prevEnd = u.EndTime
	}
	return nil
}

func validateSeries(field string, ts TimeSeries) error {
	for i := 1; i < len(ts.Points); i++ {
		if ts.Points[i].Time < ts.Points[i-1].Time {
			return &ValidationError{
				Field:  fmt.Sprintf("%s.points[%d]", field, i),
				Reason: "points are out of time order",
			}
		}
	}
	return nil
}
