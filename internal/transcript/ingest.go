package transcript

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// overlapEpsilon absorbs sub-millisecond timestamp jitter from the
// transcription service without accepting real overlaps.
const overlapEpsilon = 0.001

// Validate checks an ingested word list: non-empty, every token has text and
// a positive-length span, and tokens are ordered without overlap. The engine
// performs no silent repair; any violation aborts the run.
func Validate(words []models.WordToken) error {
	if len(words) == 0 {
		return &models.InputError{Source: "transcript", Index: -1, Reason: "empty word list"}
	}

	for i, w := range words {
		if strings.TrimSpace(w.Word) == "" {
			return &models.InputError{Source: "transcript", Index: i, Reason: "empty word text"}
		}
		if w.End <= w.Start {
			return &models.InputError{Source: "transcript", Index: i, Reason: "end time not after start time"}
		}
		if w.Start < 0 {
			return &models.InputError{Source: "transcript", Index: i, Reason: "negative start time"}
		}
		if i > 0 && w.Start < words[i-1].End-overlapEpsilon {
			return &models.InputError{Source: "transcript", Index: i, Reason: "overlaps previous word"}
		}
	}

	return nil
}

// ParseWhisperJSON extracts word tokens from a Whisper verbose_json
// document. Words may appear at the top level or nested under segments;
// both shapes occur in practice.
func ParseWhisperJSON(raw []byte) ([]models.WordToken, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &models.InputError{Source: "transcript", Index: -1, Reason: "malformed JSON"}
	}

	doc := gjson.ParseBytes(raw)

	var words []models.WordToken
	appendWord := func(w gjson.Result) bool {
		words = append(words, models.WordToken{
			Word:       w.Get("word").String(),
			Start:      w.Get("start").Float(),
			End:        w.Get("end").Float(),
			Confidence: w.Get("confidence").Float(),
		})
		return true
	}

	if top := doc.Get("words"); top.IsArray() {
		top.ForEach(func(_, w gjson.Result) bool { return appendWord(w) })
	} else if segs := doc.Get("segments"); segs.IsArray() {
		segs.ForEach(func(_, seg gjson.Result) bool {
			seg.Get("words").ForEach(func(_, w gjson.Result) bool { return appendWord(w) })
			return true
		})
	}

	if err := Validate(words); err != nil {
		return nil, err
	}
	return words, nil
}

// TotalDuration returns the end timestamp of the last word.
func TotalDuration(words []models.WordToken) float64 {
	if len(words) == 0 {
		return 0
	}
	return words[len(words)-1].End
}
