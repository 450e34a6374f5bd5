package models

const (
	SpeakerZeroColor  = "rgba(255, 0, 0, 0.5)"
	OtherSpeakerColor = "rgba(0, 0, 255, 0.5)"
)

type GeneralMetrics struct {
	Volume TimeSeries `json:"volume"`
}

type UtteranceMetrics struct {
	Valence TimeSeries `json:"valence"`
}

// DialogUtterance is a single speaker turn.
type DialogUtterance struct {
	Text       string           `json:"text"`
	StartTime  Timestamp        `json:"startTime"`
	EndTime    Timestamp        `json:"endTime"`
	Metrics    UtteranceMetrics `json:"metrics"`
	SpeakerIdx int              `json:"speakerIdx"`
}

func NewDialogUtterance(text string, startTime, endTime Timestamp, metrics UtteranceMetrics, speakerIdx int) DialogUtterance {
	return DialogUtterance{
		Text:       text,
		StartTime:  startTime,
		EndTime:    endTime,
		Metrics:    metrics,
		SpeakerIdx: speakerIdx,
	}
}

// DialogData is a whole two-party recording: its length, the dialog-wide
// volume series and the utterances in start time order.
type DialogData struct {
	Duration       float64           `json:"duration"`
	GeneralMetrics GeneralMetrics    `json:"generalMetrics"`
	Utterances     []DialogUtterance `json:"utterances"`
}

func NewDialogData(duration float64, generalMetrics GeneralMetrics, utterances []DialogUtterance) *DialogData {
	return &DialogData{
		Duration:       duration,
		GeneralMetrics: generalMetrics,
		Utterances:     utterances,
	}
}

// Segment is a colored time interval ready to be drawn on a timeline.
type Segment struct {
	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`
	Color string    `json:"color"`
}

// MakeSegments maps every utterance to a segment colored by speaker.
func (d *DialogData) MakeSegments() []Segment {
	segments := make([]Segment, 0, len(d.Utterances))
	for _, u := range d.Utterances {
		segments = append(segments, Segment{
			Start: u.StartTime,
			End:   u.EndTime,
			Color: speakerColor(u.SpeakerIdx),
		})
	}
	return segments
}

func speakerColor(speakerIdx int) string {
	if speakerIdx == 0 {
		return SpeakerZeroColor
	}
	return OtherSpeakerColor
}

// LastUtteranceEnd returns the end time of the final utterance, or 0 for a
// dialog without utterances.
func (d *DialogData) LastUtteranceEnd() Timestamp {
	if len(d.Utterances) == 0 {
		return 0
	}
	return d.Utterances[len(d.Utterances)-1].EndTime
}
