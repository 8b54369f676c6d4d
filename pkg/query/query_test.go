package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicTextSearch(t *testing.T) {
	q := New().Text("dog").Build()
	assert.Equal(t, "dog", q.String())
}

func TestFieldSearch(t *testing.T) {
	q := New().Field("Front").Contains("dog").Build()
	assert.Equal(t, "Front:dog", q.String())
}

func TestFieldIs(t *testing.T) {
	q := New().Field("Back").Is("cat").Build()
	assert.Equal(t, "Back:cat", q.String())
}

func TestNegatedTag(t *testing.T) {
	q := New().Field("Front").Contains("dog").And().Not().HasTag("marked").Build()
	assert.Equal(t, "Front:dog -tag:marked", q.String())
}

func TestDeckWithSpacesIsQuoted(t *testing.T) {
	q := New().InDeck("My Deck").Build()
	assert.Equal(t, `deck:"My Deck"`, q.String())
}

func TestDeckWithoutSpaces(t *testing.T) {
	q := New().InDeck("Japanese::Vocab").Build()
	assert.Equal(t, `deck:Japanese\:\:Vocab`, q.String())
}

func TestNoteTypeWithSpacesIsQuoted(t *testing.T) {
	q := New().OfNoteType("Basic (and reversed card)").Build()
	assert.Equal(t, `note:"Basic \(and reversed card\)"`, q.String())
}

func TestNoteTypeWithoutSpaces(t *testing.T) {
	q := New().OfNoteType("Cloze").Build()
	assert.Equal(t, "note:Cloze", q.String())
}

func TestCardStates(t *testing.T) {
	q := New().InState(StateDue).And().InState(StateLearning).Build()
	assert.Equal(t, "is:due is:learn", q.String())
}

func TestAllStateTokens(t *testing.T) {
	tokens := map[CardState]string{
		StateDue:           "is:due",
		StateNew:           "is:new",
		StateLearning:      "is:learn",
		StateReview:        "is:review",
		StateSuspended:     "is:suspended",
		StateBuried:        "is:buried",
		StateBuriedSibling: "is:buried-sibling",
		StateBuriedManual:  "is:buried-manually",
	}
	for state, want := range tokens {
		assert.Equal(t, want, New().InState(state).Build().String())
	}
}

func TestFlagOrdinals(t *testing.T) {
	assert.Equal(t, "flag:1", New().HasFlag(FlagRed).Build().String())
	assert.Equal(t, "flag:4", New().HasFlag(FlagBlue).Build().String())
	assert.Equal(t, "flag:7", New().HasFlag(FlagPurple).Build().String())
}

func TestSpecialCharEscaping(t *testing.T) {
	q := New().Text("dog*cat").Build()
	assert.Equal(t, `dog\*cat`, q.String())

	q = New().Text("dog (cat)").Build()
	assert.Equal(t, `dog \(cat\)`, q.String())
}

// Every character from the escape set gets a backslash inserted before it,
// and nothing else in the input is altered.
func TestEscapeSet(t *testing.T) {
	in := `a"b*c_d\e(f)g:h-i`
	want := `a\"b\*c\_d\\e\(f\)g\:h\-i`
	assert.Equal(t, want, New().Text(in).Build().String())
}

// Removing one backslash before each special character recovers the
// original input, provided it contained no backslashes to begin with.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"dog*cat",
		"(a:b)-c_d",
		`say "hi"`,
		"敷衍 (ふえん)",
	}
	unescape := strings.NewReplacer(
		`\"`, `"`, `\*`, `*`, `\_`, `_`, `\(`, `(`,
		`\)`, `)`, `\:`, `:`, `\-`, `-`,
	)
	for _, in := range inputs {
		escaped := New().Text(in).Build().String()
		assert.Equal(t, in, unescape.Replace(escaped), "input %q", in)
	}
}

func TestUnicodePassesThroughUnchanged(t *testing.T) {
	q := New().Field("Vocabulary").Contains("敷衍").Build()
	assert.Equal(t, "Vocabulary:敷衍", q.String())
}

func TestComplexQueryWithOr(t *testing.T) {
	q := New().
		InDeck("Japanese").
		And().
		Field("Vocabulary").Contains("敷衍").
		Or().
		Field("Reading").Contains("ふえん").
		And().
		Not().InState(StateSuspended).
		Build()

	assert.Equal(t, "deck:Japanese Vocabulary:敷衍 or Reading:ふえん -is:suspended", q.String())
}

func TestNumericProperties(t *testing.T) {
	q := New().
		IntervalAtLeast(21).
		DueIn(3).
		RepsLessThan(5).
		AddedInLastNDays(7).
		RatedToday().
		RatedInLastNDays(30).
		Build()

	assert.Equal(t, "prop:ivl>=21 prop:due=3 prop:reps<5 added:7 rated:1 rated:30", q.String())
}

// Not twice without an intervening term keeps a single armed negation.
func TestDoubleNotIsReArm(t *testing.T) {
	q := New().Not().Not().HasTag("marked").Build()
	assert.Equal(t, "-tag:marked", q.String())
}

// Builders are values: branching off a shared prefix must not let the
// branches interfere with each other.
func TestBuilderValueSemantics(t *testing.T) {
	base := New().InDeck("Spanish")
	a := base.HasTag("verbs").Build()
	b := base.HasTag("nouns").Build()

	assert.Equal(t, "deck:Spanish tag:verbs", a.String())
	assert.Equal(t, "deck:Spanish tag:nouns", b.String())
	assert.Equal(t, "deck:Spanish", base.Build().String())
}

func TestBuildIsDeterministic(t *testing.T) {
	build := func() string {
		return New().InDeck("D").Field("Front").Contains("x").Not().HasTag("t").Build().String()
	}
	first := build()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	assert.Equal(t, "deck:Japanese", Deck("Japanese").Build().String())
	assert.Equal(t, "tag:important", Tag("important").Build().String())
	assert.Equal(t, "is:new", State(StateNew).Build().String())
	assert.Equal(t, "flag:1", Flagged(FlagRed).Build().String())
}

func TestEmptyBuilderBuildsEmptyQuery(t *testing.T) {
	assert.Equal(t, "", New().Build().String())
}
