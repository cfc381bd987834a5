package models

// WordToken is a single transcribed word with start/end seconds, as produced
// by the transcription-service boundary. Immutable once ingested.
type WordToken struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Duration returns the spoken length of the word in seconds.
func (w WordToken) Duration() float64 {
	return w.End - w.Start
}
