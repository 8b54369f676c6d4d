// Package query builds Anki search queries with correct escaping and
// boolean composition.
//
// A [Builder] is a value: every operation returns a new builder, so a
// partially built query can be reused as a prefix for several searches.
// Field searches go through a two-step form so that a field name can never
// end up in a query without its content:
//
//	q := query.New().
//		InDeck("Biology::Anatomy").
//		Field("Front").Contains("mitochondria").
//		Not().HasTag("reviewed").
//		Build()
package query

import (
	"fmt"
	"strings"
)

// Query is a complete, immutable Anki search query.
type Query struct {
	s string
}

func (q Query) String() string {
	return q.s
}

// Raw wraps an already-formed search string without any escaping. Prefer
// the builder for programmatic queries.
func Raw(s string) Query {
	return Query{s: s}
}

// Builder assembles a search query part by part.
// The zero value is ready to use.
type Builder struct {
	parts   []string
	negated bool
}

// New returns an empty query builder.
func New() Builder {
	return Builder{}
}

// Text searches for free text across all fields. Special characters are
// escaped.
func (b Builder) Text(text string) Builder {
	return b.appendPart(escape(text))
}

// Field starts a field-scoped search. The returned [FieldTerm] only offers
// Contains and Is, so the builder cannot produce a query with a dangling
// field name.
func (b Builder) Field(name string) FieldTerm {
	return FieldTerm{builder: b, name: name}
}

// HasTag searches for notes carrying the tag.
func (b Builder) HasTag(tag string) Builder {
	return b.appendPart("tag:" + escape(tag))
}

// InDeck searches within the named deck. Names containing a space are
// quoted so the deck name stays a single search term.
func (b Builder) InDeck(name string) Builder {
	if strings.Contains(name, " ") {
		return b.appendPart(`deck:"` + escape(name) + `"`)
	}
	return b.appendPart("deck:" + escape(name))
}

// OfNoteType searches for notes based on the named note type. Names
// containing a space are quoted, like deck names.
func (b Builder) OfNoteType(name string) Builder {
	if strings.Contains(name, " ") {
		return b.appendPart(`note:"` + escape(name) + `"`)
	}
	return b.appendPart("note:" + escape(name))
}

// InState searches for cards in the given lifecycle state.
func (b Builder) InState(state CardState) Builder {
	return b.appendPart(state.queryToken())
}

// HasFlag searches for cards marked with the given flag color.
func (b Builder) HasFlag(flag Flag) Builder {
	return b.appendPart(fmt.Sprintf("flag:%d", flag))
}

// Not negates the next term. Calling Not twice without an intervening term
// re-arms the same negation.
func (b Builder) Not() Builder {
	b.negated = true
	return b
}

// And combines with the next term using AND. Conjunction is implicit in the
// Anki grammar, so this only exists for call-site readability.
func (b Builder) And() Builder {
	return b
}

// Or combines with the next term using OR.
func (b Builder) Or() Builder {
	return b.appendPart("or")
}

// IntervalAtLeast searches for cards with an interval of at least the given
// number of days.
func (b Builder) IntervalAtLeast(days int) Builder {
	return b.appendPart(fmt.Sprintf("prop:ivl>=%d", days))
}

// DueIn searches for cards due in the given number of days.
func (b Builder) DueIn(days int) Builder {
	return b.appendPart(fmt.Sprintf("prop:due=%d", days))
}

// RepsLessThan searches for cards with fewer than n repetitions.
func (b Builder) RepsLessThan(n int) Builder {
	return b.appendPart(fmt.Sprintf("prop:reps<%d", n))
}

// AddedInLastNDays searches for cards added within the last n days.
func (b Builder) AddedInLastNDays(days int) Builder {
	return b.appendPart(fmt.Sprintf("added:%d", days))
}

// RatedToday searches for cards answered today.
func (b Builder) RatedToday() Builder {
	return b.appendPart("rated:1")
}

// RatedInLastNDays searches for cards answered within the last n days.
func (b Builder) RatedInLastNDays(days int) Builder {
	return b.appendPart(fmt.Sprintf("rated:%d", days))
}

// Build joins the accumulated terms into the final query.
func (b Builder) Build() Query {
	return Query{s: strings.Join(b.parts, " ")}
}

func (b Builder) appendPart(part string) Builder {
	if b.negated {
		part = "-" + part
		b.negated = false
	}
	parts := make([]string, len(b.parts), len(b.parts)+1)
	copy(parts, b.parts)
	b.parts = append(parts, part)
	return b
}

// FieldTerm is a field search awaiting its content. It is only obtainable
// from [Builder.Field].
type FieldTerm struct {
	builder Builder
	name    string
}

// Contains matches content within the field.
func (t FieldTerm) Contains(content string) Builder {
	return t.builder.appendPart(t.name + ":" + escape(content))
}

// Is matches the exact field content.
func (t FieldTerm) Is(content string) Builder {
	return t.Contains(content)
}

// escape backslash-escapes the characters that are significant in the Anki
// search grammar. It is applied to user-supplied literals only, never to
// structural tokens.
func escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"', '*', '_', '\\', '(', ')', ':', '-':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Convenience constructors for single-term queries.

// Deck returns a builder searching within the named deck.
func Deck(name string) Builder {
	return New().InDeck(name)
}

// Tag returns a builder searching for the tag.
func Tag(tag string) Builder {
	return New().HasTag(tag)
}

// State returns a builder searching for cards in the given state.
func State(state CardState) Builder {
	return New().InState(state)
}

// Flagged returns a builder searching for cards with the given flag.
func Flagged(flag Flag) Builder {
	return New().HasFlag(flag)
}
