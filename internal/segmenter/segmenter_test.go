package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7ammad/saudi-standards-api/internal/records"
)

var testCtx = records.Context{
	Standard:      "STD",
	DirectiveCode: "SEC-05",
	SectionCode:   "4.3",
	Domain:        "security",
}

func TestSegment_NumberedClauses(t *testing.T) {
	text := "4.3.1 Fences must be 2m. 4.3.2 Gates must be locked."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, "4.3.1", reqs[0].ClauseID)
	assert.Equal(t, "4.3.2", reqs[1].ClauseID)
	assert.Equal(t, "STD SEC-05 4.3 4.3.1", reqs[0].Reference)
	assert.Equal(t, "STD SEC-05 4.3 4.3.2", reqs[1].Reference)
	assert.Equal(t, "4.3.1 Fences must be 2m.", reqs[0].Text)
	assert.Equal(t, "4.3.2 Gates must be locked.", reqs[1].Text)
}

func TestSegment_FourComponentLabels(t *testing.T) {
	text := "4.2.3.1 Control rooms must be hardened against blast. " +
		"4.2.3.2 Control rooms must have independent ventilation."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, "4.2.3.1", reqs[0].ClauseID)
	assert.Equal(t, "4.2.3.2", reqs[1].ClauseID)
}

func TestSegment_CascadePriority(t *testing.T) {
	// Two numbered clauses and three articles: the numbered-clause
	// strategy precedes the article strategy, so it wins.
	text := "4.3.1 Fences must be at least two metres high around the site. " +
		"4.3.2 Gates must be locked and monitored at all hours. " +
		"Article (1): Operators shall maintain a visitor log at each gate. " +
		"Article (2): Visitor badges must be surrendered on exit every day. " +
		"Article (3): Contractors require an approved escort at all times."

	reqs := New().Segment(text, testCtx)

	require.NotEmpty(t, reqs)
	assert.Equal(t, "4.3.1", reqs[0].ClauseID)
	assert.Equal(t, "4.3.2", reqs[1].ClauseID)
}

func TestSegment_Articles(t *testing.T) {
	text := "Article (1): Operators shall maintain a visitor log at each gate. " +
		"Article (2) Visitor badges must be surrendered on exit."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, "1", reqs[0].ClauseID)
	assert.Equal(t, "2", reqs[1].ClauseID)
	assert.Contains(t, reqs[0].Text, "visitor log")
}

func TestSegment_BareSections(t *testing.T) {
	text := "4.1 All exits must remain unobstructed at every facility. " +
		"4.2 Emergency lighting must be tested monthly by the operator."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, "4.1", reqs[0].ClauseID)
	assert.Equal(t, "4.2", reqs[1].ClauseID)
}

func TestSegment_SingleMatchFallsThrough(t *testing.T) {
	// One numbered clause is below the two-match threshold, so the
	// cascade falls through; the text is long enough for the
	// whole-text fallback to emit exactly one record.
	text := "4.3.1 This facility requires continuous perimeter monitoring " +
		"with cameras covering every approach and all access points."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 1)
	assert.Equal(t, "1", reqs[0].ClauseID)
}

func TestSegment_ShortCapturesDiscarded(t *testing.T) {
	// Both captures clean to 20 chars or fewer, so the numbered
	// strategy rejects; the text as a whole is also too short for
	// the fallbacks, so nothing is emitted.
	text := "4.3.1 Too small. 4.3.2 Tiny also."

	reqs := New().Segment(text, testCtx)

	assert.Empty(t, reqs)
}

func TestSegment_ParagraphFallback(t *testing.T) {
	long := strings.Repeat("All storage areas must be ventilated and clear. ", 3) // ~144 chars
	text := long + "\n\n" + long + "\n\n" + long + "\n\n" + long

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 4)
	for _, r := range reqs {
		assert.Greater(t, len(r.Text), 100)
		assert.Equal(t, strings.Join(strings.Fields(long), " "), r.Text)
		assert.NotEmpty(t, r.ClauseID)
	}
	assert.Equal(t, "1", reqs[0].ClauseID)
	assert.Equal(t, "4", reqs[3].ClauseID)
}

func TestSegment_ParagraphFallbackRelaxedMinimum(t *testing.T) {
	// Two paragraphs between 50 and 100 characters: too few long
	// paragraphs, so the relaxed 50-character minimum applies.
	p1 := "Warehouse doors must be fitted with approved locking hardware."   // 62
	p2 := "Loading bays require supervision during all transfer operations." // 64
	text := p1 + "\n\n" + p2

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, p1, reqs[0].Text)
	assert.Equal(t, p2, reqs[1].Text)
}

func TestSegment_SingleLongParagraph(t *testing.T) {
	text := "The operator is responsible for maintaining all protective systems " +
		"in a serviceable condition at all times without exception."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 1)
	assert.Equal(t, records.CleanText(text), reqs[0].Text)
	assert.Equal(t, "STD SEC-05 4.3 1", reqs[0].Reference)
}

func TestSegment_WholeTextFallback(t *testing.T) {
	// Every paragraph is under the relaxed 50-character minimum, but
	// the text as a whole exceeds 100 characters: the whole-text
	// fallback emits exactly one record.
	p := "Keep the area clear of waste."
	text := strings.Join([]string{p, p, p, p, p}, "\n\n")

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 1)
	assert.Equal(t, records.CleanText(text), reqs[0].Text)
	assert.Equal(t, "1", reqs[0].ClauseID)
}

func TestSegment_ShortTextYieldsNothing(t *testing.T) {
	assert.Empty(t, New().Segment("Too short to keep.", testCtx))
	assert.Empty(t, New().Segment("", testCtx))
	assert.Empty(t, New().Segment("   \n\n  ", testCtx))
}

func TestSegment_Deterministic(t *testing.T) {
	text := "4.3.1 Fences must be at least two metres high around the site. " +
		"4.3.2 Gates must be locked and monitored at all hours."

	a := New().Segment(text, testCtx)
	b := New().Segment(text, testCtx)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ClauseID, b[i].ClauseID)
		assert.Equal(t, a[i].Text, b[i].Text)
		assert.Equal(t, a[i].Reference, b[i].Reference)
	}
}

func TestSegment_TitleIsFirstSentence(t *testing.T) {
	text := "4.3.1 Fences must be at least two metres high. Gaps are not permitted. " +
		"4.3.2 Gates must be locked and monitored at all hours without fail."

	reqs := New().Segment(text, testCtx)

	require.Len(t, reqs, 2)
	assert.Equal(t, "4.3.1 Fences must be at least two metres high.", reqs[0].Title)
}
