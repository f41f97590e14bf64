package usecase

// Canned responses for turns that need no downstream call.
const (
	MsgGreeting = "Hello! I'm your air cargo booking assistant. I can help you get quotes, create bookings, track shipments, or cancel bookings. How can I help you today?"

	MsgActionCancelled = "Okay, I've cancelled that action. How else can I help you?"

	MsgAskBookingID = "What's your booking ID?"

	MsgFallbackClarification = "I'm not sure I understand. I can help you with quotes, bookings, tracking, or cancellations. What would you like to do?"

	MsgGenericFailure = "Something went wrong on our side. Please try again."
)

// Token sets for resolving a pending confirmation by substring match.
// Known heuristic limitation: a message containing words from both sets
// resolves as affirmative because the affirmation check runs first, and
// a message containing neither falls through to normal intent dispatch.
var (
	affirmationTokens = []string{"yes", "confirm", "sure", "ok", "proceed"}
	negationTokens    = []string{"no", "cancel", "stop", "nevermind"}
)

// Slots that must be filled before quoting or booking, in prompt order.
var requiredShipmentSlots = []string{"origin", "destination", "weight", "cargo_type", "shipping_date"}
