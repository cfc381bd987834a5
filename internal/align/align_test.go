package align

import (
	"strings"
	"testing"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

// wordsFrom builds a uniform-timing transcript from plain text.
func wordsFrom(text string, start, perWord float64) []models.WordToken {
	fields := strings.Fields(text)
	words := make([]models.WordToken, len(fields))
	for i, f := range fields {
		words[i] = models.WordToken{
			Word:       f,
			Start:      start + float64(i)*perWord,
			End:        start + float64(i+1)*perWord,
			Confidence: 0.99,
		}
	}
	return words
}

func segment(num int, text string) models.NarrationSegment {
	return models.NarrationSegment{
		SceneNumber:   num,
		Act:           1,
		SegmentIndex:  num - 1,
		Text:          text,
		AssetCount:    1,
		AssetExcerpts: []string{text},
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  The City, burned -- for THREE days!  ")
	want := "the city burned for three days"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTokenRatioIdentical(t *testing.T) {
	a := []string{"the", "city", "burned"}
	if r := TokenRatio(a, a); r != 1.0 {
		t.Errorf("expected ratio 1.0, got %v", r)
	}
}

func TestTokenRatioDisjoint(t *testing.T) {
	if r := TokenRatio([]string{"alpha"}, []string{"omega"}); r != 0.0 {
		t.Errorf("expected ratio 0.0, got %v", r)
	}
}

func TestAlignVerbatimScenario(t *testing.T) {
	// Six words timed 10.0-12.0 must recover exact bounds with full
	// confidence.
	words := []models.WordToken{
		{Word: "The", Start: 10.0, End: 10.4},
		{Word: "city", Start: 10.4, End: 10.7},
		{Word: "burned", Start: 10.7, End: 11.1},
		{Word: "for", Start: 11.1, End: 11.3},
		{Word: "three", Start: 11.3, End: 11.6},
		{Word: "days", Start: 11.6, End: 12.0},
	}
	segments := []models.NarrationSegment{segment(1, "The city burned for three days.")}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}
	got := aligned[0]
	if got.Strategy != models.StrategyFullExcerpt {
		t.Errorf("expected full_excerpt, got %s", got.Strategy)
	}
	if got.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", got.Confidence)
	}
	if got.StartTime != 10.0 || got.EndTime != 12.0 {
		t.Errorf("expected bounds [10.0, 12.0], got [%v, %v]", got.StartTime, got.EndTime)
	}
}

func TestAlignRoundTripVerbatimScript(t *testing.T) {
	// A transcript built by concatenating the script verbatim recovers
	// every boundary exactly via the full-excerpt tier.
	texts := []string{
		"In the spring of that year the harvest failed across the northern provinces",
		"Grain prices tripled within a single month and the markets began to close",
		"By winter the capital itself was rationing bread to every household",
	}
	words := wordsFrom(strings.Join(texts, " "), 0, 0.4)
	var segments []models.NarrationSegment
	for i, text := range texts {
		segments = append(segments, segment(i+1, text))
	}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}

	wordAt := 0
	for i, got := range aligned {
		if got.Strategy != models.StrategyFullExcerpt {
			t.Fatalf("segment %d: expected full_excerpt, got %s (confidence %v)", i, got.Strategy, got.Confidence)
		}
		segLen := len(strings.Fields(texts[i]))
		if got.WordRangeStart != wordAt || got.WordRangeEnd != wordAt+segLen-1 {
			t.Errorf("segment %d: expected range [%d,%d], got [%d,%d]",
				i, wordAt, wordAt+segLen-1, got.WordRangeStart, got.WordRangeEnd)
		}
		if got.StartTime != words[got.WordRangeStart].Start || got.EndTime != words[got.WordRangeEnd].End {
			t.Errorf("segment %d: bounds do not match word timestamps", i)
		}
		wordAt += segLen
	}
}

func TestAlignWordRangesMonotonic(t *testing.T) {
	texts := []string{
		"the committee gathered in the eastern chamber to debate the new tax",
		"outside the chamber the crowd grew restless and loud through the night",
	}
	words := wordsFrom(strings.Join(texts, " "), 0, 0.3)
	segments := []models.NarrationSegment{segment(1, texts[0]), segment(2, texts[1])}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}
	for i := 1; i < len(aligned); i++ {
		if aligned[i].WordRangeStart <= aligned[i-1].WordRangeEnd {
			t.Errorf("segment %d word range overlaps predecessor: %d <= %d",
				i, aligned[i].WordRangeStart, aligned[i-1].WordRangeEnd)
		}
		if aligned[i].StartTime < aligned[i-1].EndTime {
			t.Errorf("segment %d starts before predecessor ends", i)
		}
	}
}

func TestAlignAnchorFallback(t *testing.T) {
	// Transcript keeps only the distinctive words; full-excerpt similarity
	// stays under threshold but ordered anchors bound the segment.
	words := wordsFrom("um magnificent uh uh cathedral blah blah harbor noise", 0, 0.5)
	segments := []models.NarrationSegment{
		segment(1, "the magnificent cathedral stood above the harbor city"),
	}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}
	got := aligned[0]
	if got.Strategy != models.StrategyAnchorFallback {
		t.Fatalf("expected anchor_fallback, got %s (confidence %v)", got.Strategy, got.Confidence)
	}
	if got.AnchorsFound < 2 {
		t.Errorf("expected at least 2 anchors, got %d", got.AnchorsFound)
	}
	if got.StartTime != 0.5 { // "magnificent" starts at 0.5
		t.Errorf("expected start at first anchor 0.5, got %v", got.StartTime)
	}
	if got.EndTime != 4.0 { // "harbor" ends at 4.0
		t.Errorf("expected end at last anchor 4.0, got %v", got.EndTime)
	}
	if got.Confidence >= config.DefaultConstraints().FuzzyMatchThreshold {
		t.Errorf("anchor confidence %v should sit below the fuzzy threshold", got.Confidence)
	}
}

func TestAlignProportionalFallback(t *testing.T) {
	// Nothing in the segment appears in the transcript: the terminal tier
	// must still produce bounds, flagged with zero confidence.
	words := wordsFrom("one two three four five six seven eight nine ten", 0, 1.0)
	segments := []models.NarrationSegment{
		segment(1, "zz qq ww rr"),
	}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}
	got := aligned[0]
	if got.Strategy != models.StrategyProportional {
		t.Fatalf("expected proportional, got %s", got.Strategy)
	}
	if got.Confidence != 0 {
		t.Errorf("expected zero confidence, got %v", got.Confidence)
	}
	if got.StartTime != 0 || got.EndTime != 10.0 {
		// Sole remaining segment takes the whole remaining transcript.
		t.Errorf("expected bounds [0,10], got [%v,%v]", got.StartTime, got.EndTime)
	}
}

func TestAlignProportionalAdvancesCursor(t *testing.T) {
	// First segment matches verbatim; second is unmatchable and must be
	// estimated forward from the cursor, not from zero.
	matched := "the harvest failed across the province"
	words := wordsFrom(matched+" one two three four five six", 0, 0.5)
	segments := []models.NarrationSegment{
		segment(1, matched),
		segment(2, "zz qq ww rr pp uu"),
	}

	aligned, err := Align(segments, words, config.DefaultConstraints())
	if err != nil {
		t.Fatalf("align failed: %v", err)
	}
	if aligned[1].Strategy != models.StrategyProportional {
		t.Fatalf("expected proportional for segment 2, got %s", aligned[1].Strategy)
	}
	if aligned[1].StartTime != aligned[0].EndTime {
		t.Errorf("proportional segment should start at cursor %v, got %v",
			aligned[0].EndTime, aligned[1].StartTime)
	}
	if aligned[1].EndTime != 6.0 {
		// All remaining narration maps onto all remaining transcript time.
		t.Errorf("expected end 6.0, got %v", aligned[1].EndTime)
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	if _, err := Align(nil, wordsFrom("a b", 0, 1), config.DefaultConstraints()); err == nil {
		t.Error("expected error for empty segment list")
	}
	if _, err := Align([]models.NarrationSegment{segment(1, "text here")}, nil, config.DefaultConstraints()); err == nil {
		t.Error("expected error for empty transcript")
	}
}
