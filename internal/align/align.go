package align

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/models"
)

const (
	// searchWindowMultiplier bounds how far past the cursor the sliding
	// search looks, in multiples of the excerpt word count.
	searchWindowMultiplier = 3

	// minSearchAhead keeps the horizon useful for very short excerpts.
	minSearchAhead = 50

	// anchorMinLength is the shortest token considered distinctive.
	anchorMinLength = 5

	// maxAnchors caps how many distinctive tokens the fallback locates.
	maxAnchors = 4
)

// cursor is the single forward-only position threaded through the fold.
// word is the next unconsumed transcript index; time is the seconds mark
// reached by the last consumed range.
type cursor struct {
	word int
	time float64
}

// Align maps each narration segment, in script order, onto a span of the
// transcript. The cascade per segment: full-excerpt sliding-window fuzzy
// match, distinctive-anchor fallback, then a proportional estimate that
// always succeeds but is flagged low-confidence. A single monotonic cursor
// guarantees consumed ranges never overlap or reorder.
func Align(segments []models.NarrationSegment, words []models.WordToken, c config.TimingConstraints) ([]models.AlignedSegment, error) {
	if len(segments) == 0 {
		return nil, &models.InputError{Source: "script", Index: -1, Reason: "no segments to align"}
	}
	if len(words) == 0 {
		return nil, &models.InputError{Source: "transcript", Index: -1, Reason: "no words to align against"}
	}

	transcriptEnd := words[len(words)-1].End

	// Remaining script word counts from each segment onward, for the
	// proportional fallback.
	remainingWords := make([]int, len(segments)+1)
	for i := len(segments) - 1; i >= 0; i-- {
		remainingWords[i] = remainingWords[i+1] + len(strings.Fields(segments[i].Text))
	}

	cur := cursor{}
	aligned := make([]models.AlignedSegment, 0, len(segments))

	for i, seg := range segments {
		excerpt := Tokenize(seg.Text)
		if len(excerpt) == 0 {
			return nil, &models.InputError{Source: "script", Index: seg.SceneNumber, Reason: "narration normalizes to empty text"}
		}

		searchLimit := cur.word + max(searchWindowMultiplier*len(excerpt), minSearchAhead)
		if searchLimit > len(words) {
			searchLimit = len(words)
		}

		var out models.AlignedSegment

		if start, end, score, ok := bestWindow(excerpt, words, cur.word, searchLimit, c.FuzzyMatchThreshold); ok {
			out = models.AlignedSegment{
				NarrationSegment: seg,
				WordRangeStart:   start,
				WordRangeEnd:     end,
				StartTime:        words[start].Start,
				EndTime:          words[end].End,
				Strategy:         models.StrategyFullExcerpt,
				Confidence:       score,
			}
			cur = cursor{word: end + 1, time: words[end].End}
		} else if start, end, found, used, ok := anchorWindow(excerpt, words, cur.word, searchLimit); ok {
			out = models.AlignedSegment{
				NarrationSegment: seg,
				WordRangeStart:   start,
				WordRangeEnd:     end,
				StartTime:        words[start].Start,
				EndTime:          words[end].End,
				Strategy:         models.StrategyAnchorFallback,
				Confidence:       0.5 * float64(found) / float64(used),
				AnchorsFound:     found,
				AnchorsUsed:      used,
			}
			cur = cursor{word: end + 1, time: words[end].End}
		} else {
			// Terminal fallback: allocate time proportional to this
			// segment's share of the remaining narration.
			share := float64(len(strings.Fields(seg.Text))) / float64(remainingWords[i])
			duration := share * (transcriptEnd - cur.time)
			if duration < 0 {
				duration = 0
			}
			out = models.AlignedSegment{
				NarrationSegment: seg,
				WordRangeStart:   cur.word,
				WordRangeEnd:     cur.word - 1,
				StartTime:        cur.time,
				EndTime:          cur.time + duration,
				Strategy:         models.StrategyProportional,
				Confidence:       0,
			}
			cur.time = out.EndTime
			for cur.word < len(words) && words[cur.word].Start < cur.time {
				cur.word++
			}
		}

		config.Log.WithFields(logrus.Fields{
			"scene":      seg.SceneNumber,
			"strategy":   out.Strategy,
			"confidence": out.Confidence,
			"start":      out.StartTime,
			"end":        out.EndTime,
		}).Debug("segment aligned")

		aligned = append(aligned, out)
	}

	return aligned, nil
}

// bestWindow slides candidate windows of excerpt length plus or minus a
// tolerance band across words[from:limit] and returns the best-scoring span.
// ok is true only when the best score clears the fuzzy threshold.
func bestWindow(excerpt []string, words []models.WordToken, from, limit int, threshold float64) (start, end int, score float64, ok bool) {
	tolerance := len(excerpt) / 10
	if tolerance < 1 {
		tolerance = 1
	}

	counts := tokenCounts(excerpt)
	bestScore := 0.0
	bestStart, bestEnd := -1, -1

	for i := from; i < limit; i++ {
		for winLen := len(excerpt) - tolerance; winLen <= len(excerpt)+tolerance; winLen++ {
			if winLen < 1 || i+winLen > len(words) {
				continue
			}
			span := normalizedSpan(words[i : i+winLen])
			if overlapBound(counts, len(excerpt), span) <= bestScore {
				continue
			}
			if s := TokenRatio(excerpt, span); s > bestScore {
				bestScore = s
				bestStart = i
				bestEnd = i + winLen - 1
			}
		}
	}

	if bestStart < 0 || bestScore < threshold {
		return 0, 0, bestScore, false
	}
	return bestStart, bestEnd, bestScore, true
}

// anchorWindow locates distinctive excerpt tokens, in their excerpt order,
// in the unconsumed transcript. Two or more hits bound the segment.
func anchorWindow(excerpt []string, words []models.WordToken, from, limit int) (start, end, found, used int, ok bool) {
	anchors := selectAnchors(excerpt)
	if len(anchors) < 2 {
		return 0, 0, 0, len(anchors), false
	}

	firstIdx, lastIdx := -1, -1
	pos := from
	for _, anchor := range anchors {
		for i := pos; i < limit; i++ {
			if NormalizeText(words[i].Word) == anchor {
				if firstIdx < 0 {
					firstIdx = i
				}
				lastIdx = i
				pos = i + 1
				found++
				break
			}
		}
	}

	if found < 2 {
		return 0, 0, found, len(anchors), false
	}
	return firstIdx, lastIdx, found, len(anchors), true
}

// selectAnchors picks up to maxAnchors of the longest distinctive tokens,
// returned in excerpt order so transcript hits can be required in order.
func selectAnchors(excerpt []string) []string {
	type candidate struct {
		token string
		pos   int
	}
	seen := make(map[string]bool, len(excerpt))
	var candidates []candidate
	for pos, tok := range excerpt {
		if len(tok) >= anchorMinLength && !seen[tok] {
			seen[tok] = true
			candidates = append(candidates, candidate{token: tok, pos: pos})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].token) > len(candidates[j].token)
	})
	if len(candidates) > maxAnchors {
		candidates = candidates[:maxAnchors]
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].pos < candidates[j].pos
	})

	anchors := make([]string, len(candidates))
	for i, c := range candidates {
		anchors[i] = c.token
	}
	return anchors
}

func normalizedSpan(words []models.WordToken) []string {
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Tokenize(w.Word)...)
	}
	return tokens
}
