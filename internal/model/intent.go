package model

// Intent classifies what the caller is trying to do in a turn.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentQuote         Intent = "quote"
	IntentBook          Intent = "book"
	IntentCancel        Intent = "cancel"
	IntentTrack         Intent = "track"
	IntentClarification Intent = "clarification"
)

// Valid reports whether the intent is one of the known values.
func (i Intent) Valid() bool {
	switch i {
	case IntentGreeting, IntentQuote, IntentBook, IntentCancel, IntentTrack, IntentClarification:
		return true
	}
	return false
}
