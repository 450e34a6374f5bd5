package models

// Timestamp is a point in time measured in seconds from the start of a dialog.
type Timestamp = float64

type TimeSeriesPoint struct {
	Time  Timestamp `json:"time"`
	Value float64   `json:"value"`
}

// TimeSeries is a named sequence of samples. Points are expected in
// non-decreasing time order; the type does not enforce it.
type TimeSeries struct {
	Name   string            `json:"name"`
	Points []TimeSeriesPoint `json:"points"`
}

func NewTimeSeries(name string, points []TimeSeriesPoint) TimeSeries {
	return TimeSeries{
		Name:   name,
		Points: points,
	}
}

// Shift returns a copy of the series translated in time by offset.
// The receiver and its points are left untouched.
func (ts TimeSeries) Shift(offset Timestamp) TimeSeries {
	shifted := make([]TimeSeriesPoint, len(ts.Points))
	for i, p := range ts.Points {
		shifted[i] = TimeSeriesPoint{
			Time:  p.Time + offset,
			Value: p.Value,
		}
	}
	return NewTimeSeries(ts.Name, shifted)
}

func (ts TimeSeries) Len() int {
	return len(ts.Points)
}

// Span reports the times of the first and last point.
func (ts TimeSeries) Span() (first, last Timestamp, ok bool) {
	if len(ts.Points) == 0 {
		return 0, 0, false
	}
	return ts.Points[0].Time, ts.Points[len(ts.Points)-1].Time, true
}
