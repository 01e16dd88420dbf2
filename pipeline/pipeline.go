package pipeline

import (
	"go.uber.org/zap"

	"github.com/ckirschner/ProjectSync/logger"
	"github.com/ckirschner/ProjectSync/model"
)

// Step is one stage of the full-sync pipeline.
type Step struct {
	Name string
	Run  func() (model.Outcome, string)
}

// Result reports where a pipeline run ended. Step and Detail describe
// the last step that ran; Completed counts the steps that finished Ok.
type Result struct {
	Outcome   model.Outcome
	Step      string
	Detail    string
	Completed int
}

// Run executes the steps strictly in order and halts at the first step
// whose outcome is not Ok. Completed steps are never rolled back; the
// pipeline is sequential-with-early-exit, not transactional.
func Run(steps []Step) Result {
	for i, step := range steps {
		logger.Log.Info("running step", zap.String("step", step.Name))

		outcome, detail := step.Run()
		if !outcome.Ok() {
			logger.Log.Warn("pipeline halted",
				zap.String("step", step.Name),
				zap.String("outcome", string(outcome)))

			return Result{
				Outcome:   outcome,
				Step:      step.Name,
				Detail:    detail,
				Completed: i,
			}
		}
	}

	last := ""
	if len(steps) > 0 {
		last = steps[len(steps)-1].Name
	}

	return Result{
		Outcome:   model.OutcomeSuccess,
		Step:      last,
		Completed: len(steps),
	}
}
