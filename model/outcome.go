package model

// Outcome is the result of one public operation. Cancellation is a user
// decision, not an error; nothing-to-do is a success with no transfer.
type Outcome string

const (
	OutcomeSuccess   Outcome = "SUCCESS"
	OutcomeNothing   Outcome = "NOTHING_TO_DO"
	OutcomeCancelled Outcome = "CANCELLED"
	OutcomeFailed    Outcome = "FAILED"
)

// Ok reports whether a multi-step pipeline may continue past this outcome.
func (o Outcome) Ok() bool {
	return o == OutcomeSuccess || o == OutcomeNothing
}
