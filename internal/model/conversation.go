package model

// TurnMessage is one entry of the conversation history the caller supplies.
type TurnMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Confirmation types carried between turns.
const (
	ConfirmationBook   = "book"
	ConfirmationCancel = "cancel"
)

// PendingConfirmation marks a mutating action awaiting an explicit yes/no.
// For type "book", Data holds the full draft shipment. For type "cancel",
// BookingID identifies the booking to cancel.
type PendingConfirmation struct {
	Type      string `json:"type"`
	Data      *Slots `json:"data,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}
