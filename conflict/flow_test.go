package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckirschner/ProjectSync/model"
)

func conflictsNamed(names ...string) []model.Conflict {
	out := make([]model.Conflict, 0, len(names))
	for _, n := range names {
		out = append(out, model.Conflict{File: n})
	}

	return out
}

func TestResolve_EmptyListIsNoop(t *testing.T) {
	t.Parallel()

	called := 0
	resolution, cancelled := Resolve(nil, func(int, model.Conflict, int) (model.Choice, bool, bool) {
		called++
		return model.ChoiceLocal, false, false
	})

	assert.False(t, cancelled)
	assert.Empty(t, resolution)
	assert.Zero(t, called)
}

func TestResolve_EveryConflictGetsADecision(t *testing.T) {
	t.Parallel()

	conflicts := conflictsNamed("a", "b", "c")
	choices := []model.Choice{model.ChoiceLocal, model.ChoiceSkip, model.ChoiceRemote}

	resolution, cancelled := Resolve(conflicts, func(i int, c model.Conflict, total int) (model.Choice, bool, bool) {
		assert.Equal(t, 3, total)
		return choices[i], false, false
	})

	require.False(t, cancelled)
	assert.Equal(t, model.Resolution{
		"a": model.ChoiceLocal,
		"b": model.ChoiceSkip,
		"c": model.ChoiceRemote,
	}, resolution)
}

func TestResolve_ApplyAllPropagatesToRemaining(t *testing.T) {
	t.Parallel()

	conflicts := conflictsNamed("a", "b", "c", "d", "e")
	presented := 0

	resolution, cancelled := Resolve(conflicts, func(i int, c model.Conflict, total int) (model.Choice, bool, bool) {
		presented++
		if i == 0 {
			return model.ChoiceSkip, false, false
		}
		// apply-to-all on the second conflict
		return model.ChoiceRemote, true, false
	})

	require.False(t, cancelled)
	assert.Equal(t, 2, presented, "remaining conflicts must not be presented after apply-all")
	require.Len(t, resolution, len(conflicts))
	assert.Equal(t, model.ChoiceSkip, resolution["a"])
	for _, f := range []string{"b", "c", "d", "e"} {
		assert.Equal(t, model.ChoiceRemote, resolution[f], "file %s", f)
	}
}

func TestResolve_ApplyAllOnLastConflict(t *testing.T) {
	t.Parallel()

	conflicts := conflictsNamed("a", "b")

	resolution, cancelled := Resolve(conflicts, func(i int, c model.Conflict, total int) (model.Choice, bool, bool) {
		return model.ChoiceLocal, i == 1, false
	})

	require.False(t, cancelled)
	assert.Len(t, resolution, 2)
}

func TestResolve_CancelDiscardsDecisions(t *testing.T) {
	t.Parallel()

	conflicts := conflictsNamed("a", "b", "c")

	resolution, cancelled := Resolve(conflicts, func(i int, c model.Conflict, total int) (model.Choice, bool, bool) {
		if i == 2 {
			return "", false, true
		}
		return model.ChoiceLocal, false, false
	})

	assert.True(t, cancelled)
	assert.Nil(t, resolution)
}

func TestResolve_CancelOnFirstConflict(t *testing.T) {
	t.Parallel()

	resolution, cancelled := Resolve(conflictsNamed("a"), func(int, model.Conflict, int) (model.Choice, bool, bool) {
		return "", false, true
	})

	assert.True(t, cancelled)
	assert.Nil(t, resolution)
}
