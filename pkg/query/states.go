package query

// CardState is a coarse card lifecycle bucket used for filtering.
type CardState int

const (
	StateDue CardState = iota
	StateNew
	StateLearning
	StateReview
	StateSuspended
	StateBuried
	StateBuriedSibling
	StateBuriedManual
)

// queryToken returns the fixed search token for the state.
func (s CardState) queryToken() string {
	switch s {
	case StateDue:
		return "is:due"
	case StateNew:
		return "is:new"
	case StateLearning:
		return "is:learn"
	case StateReview:
		return "is:review"
	case StateSuspended:
		return "is:suspended"
	case StateBuried:
		return "is:buried"
	case StateBuriedSibling:
		return "is:buried-sibling"
	case StateBuriedManual:
		return "is:buried-manually"
	}
	return "is:due"
}

// Flag is a user-assignable color marker on a card. The numeric values are
// the fixed ordinals used by the search grammar.
type Flag int

const (
	FlagRed Flag = iota + 1
	FlagOrange
	FlagGreen
	FlagBlue
	FlagPink
	FlagTurquoise
	FlagPurple
)
