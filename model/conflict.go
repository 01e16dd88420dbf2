package model

const TimeFormat = "2006-01-02 15:04:05"

type SyncDirection string

const (
	ToRemote   SyncDirection = "TO_REMOTE"
	FromRemote SyncDirection = "FROM_REMOTE"
)

// Choice is a per-file decision made during conflict resolution.
type Choice string

const (
	ChoiceLocal  Choice = "LOCAL"
	ChoiceRemote Choice = "REMOTE"
	ChoiceSkip   Choice = "SKIP"
)

// Conflict is a gitignored file present on both machines with differing
// modification times. Times are pre-formatted at whole-second precision;
// equal-after-formatting timestamps never produce a Conflict.
type Conflict struct {
	File       string
	LocalTime  string
	RemoteTime string
}

// Resolution maps a conflicted file to the user's decision. Files that
// were never in conflict have no entry and are never excluded from a sync.
type Resolution map[string]Choice

// Keep reports whether the decision for file lets the given side's copy
// be transferred. Files without a decision are always kept.
func (r Resolution) Keep(file string, choice Choice) bool {
	decided, ok := r[file]
	if !ok {
		return true
	}

	return decided == choice
}
