package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ckirschner/ProjectSync/conflict"
	"github.com/ckirschner/ProjectSync/gitops"
	"github.com/ckirschner/ProjectSync/model"
)

// stdin is shared by every prompt so one prompt's buffered read-ahead
// is still visible to the next prompt in the same run.
var stdin = bufio.NewReader(os.Stdin)

func stdinDecider() conflict.DecideFunc {
	return deciderFrom(stdin)
}

// deciderFrom presents conflicts one by one on the terminal. Answers:
// l/r/s pick a side or skip, an 'a' suffix applies the choice to all
// remaining conflicts, q cancels the whole sync. A closed stdin counts
// as a cancel.
func deciderFrom(reader *bufio.Reader) conflict.DecideFunc {
	return func(index int, c model.Conflict, total int) (model.Choice, bool, bool) {
		fmt.Printf("\nConflict %d of %d: %s\n", index+1, total, c.File)
		fmt.Println("  modified on both local and remote")
		fmt.Printf("  Local:  %s\n", c.LocalTime)
		fmt.Printf("  Remote: %s\n", c.RemoteTime)

		for {
			fmt.Print("Keep which version? [l]ocal / [r]emote / [s]kip (la/ra/sa for all remaining, q to cancel): ")

			answer, err := reader.ReadString('\n')
			answer = strings.TrimSpace(strings.ToLower(answer))

			applyAll := strings.HasSuffix(answer, "a") && len(answer) == 2

			switch strings.TrimSuffix(answer, "a") {
			case "l", "local":
				return model.ChoiceLocal, applyAll, false
			case "r", "remote":
				return model.ChoiceRemote, applyAll, false
			case "s", "skip":
				return model.ChoiceSkip, applyAll, false
			case "q", "quit", "cancel":
				return "", false, true
			}

			if err != nil {
				return "", false, true
			}

			fmt.Println("unrecognized answer")
		}
	}
}

func stdinMessage() gitops.MessageFunc {
	return messageFrom(stdin)
}

// messageFrom prompts for a commit message after showing the pending
// changes. An empty message (or closed stdin) cancels.
func messageFrom(reader *bufio.Reader) gitops.MessageFunc {
	return func(summary string) (string, bool) {
		fmt.Println("\nYou have uncommitted changes:")
		for _, line := range strings.Split(summary, "\n") {
			fmt.Printf("  %s\n", line)
		}

		fmt.Print("Commit message (empty to cancel): ")

		msg, _ := reader.ReadString('\n')
		msg = strings.TrimSpace(msg)
		if msg == "" {
			return "", false
		}

		return msg, true
	}
}

func stdinConfirm() gitops.ConfirmFunc {
	return confirmFrom(stdin)
}

func confirmFrom(reader *bufio.Reader) gitops.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)

		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))

		return answer == "y" || answer == "yes"
	}
}
