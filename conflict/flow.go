package conflict

import "github.com/ckirschner/ProjectSync/model"

// DecideFunc presents one conflict to the user and returns the decision.
// applyAll propagates the same choice to every remaining conflict;
// cancel aborts the whole flow, discarding earlier decisions.
type DecideFunc func(index int, c model.Conflict, total int) (choice model.Choice, applyAll bool, cancel bool)

// Resolve walks the conflicts in order, collecting a decision for each.
// It returns the complete resolution, or cancelled=true and no
// resolution. An empty conflict list resolves to an empty Resolution.
func Resolve(conflicts []model.Conflict, decide DecideFunc) (model.Resolution, bool) {
	resolution := make(model.Resolution, len(conflicts))

	for i, c := range conflicts {
		choice, applyAll, cancel := decide(i, c, len(conflicts))
		if cancel {
			return nil, true
		}

		resolution[c.File] = choice

		if applyAll {
			for _, rest := range conflicts[i+1:] {
				resolution[rest.File] = choice
			}
			break
		}
	}

	return resolution, false
}
