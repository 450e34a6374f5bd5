package models

// DialogSummary condenses a dialog for quick inspection.
type DialogSummary struct {
	Duration         float64         `json:"duration"`
	Utterances       int             `json:"utterances"`
	VolumePoints     int             `json:"volumePoints"`
	ValencePoints    int             `json:"valencePoints"`
	SpeakingTime     map[int]float64 `json:"speakingTime"`
	SpeakingShare    map[int]float64 `json:"speakingShare"`
	LastUtteranceEnd Timestamp       `json:"lastUtteranceEnd"`
	ExceedsDuration  bool            `json:"exceedsDuration"`
	Valid            bool            `json:"valid"`
	ValidationError  string          `json:"validationError,omitempty"`
}

func (d *DialogData) Summarize() DialogSummary {
	s := DialogSummary{
		Duration:         d.Duration,
		Utterances:       len(d.Utterances),
		VolumePoints:     d.GeneralMetrics.Volume.Len(),
		SpeakingTime:     make(map[int]float64),
		SpeakingShare:    make(map[int]float64),
		LastUtteranceEnd: d.LastUtteranceEnd(),
		Valid:            true,
	}
	s.ExceedsDuration = s.LastUtteranceEnd > d.Duration

	var total float64
	for _, u := range d.Utterances {
		s.ValencePoints += u.Metrics.Valence.Len()
		span := max(u.EndTime-u.StartTime, 0)
		s.SpeakingTime[u.SpeakerIdx] += span
		total += span
	}
	if total > 0 {
		for speaker, spoken := range s.SpeakingTime {
			s.SpeakingShare[speaker] = spoken / total
		}
	}

	if err := d.Validate(); err != nil {
		s.Valid = false
		s.ValidationError = err.Error()
	}
	return s
}
