package committer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

func TestApply_RunsStepsInOrder(t *testing.T) {
	var order []string
	plan := NewPlan()
	plan.Add("first", func(context.Context) error { order = append(order, "first"); return nil })
	plan.Add("skipped", nil)
	plan.Add("second", func(context.Context) error { order = append(order, "second"); return nil })

	require.NoError(t, Apply(context.Background(), plan))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, plan.Count())
}

func TestApply_EmptyPlan(t *testing.T) {
	assert.NoError(t, Apply(context.Background(), NewPlan()))
	assert.NoError(t, Apply(context.Background(), nil))
	assert.True(t, NewPlan().IsEmpty())
}

func TestApply_FirstStepFails(t *testing.T) {
	called := false
	plan := NewPlan()
	plan.Add("replace stock", func(context.Context) error { return errWrite })
	plan.Add("append history", func(context.Context) error { called = true; return nil })

	err := Apply(context.Background(), plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
	assert.NotErrorIs(t, err, ErrPartial)
	assert.False(t, called)
}

func TestApply_LaterStepFails(t *testing.T) {
	plan := NewPlan()
	plan.Add("replace stock", func(context.Context) error { return nil })
	plan.Add("append history", func(context.Context) error { return errWrite })

	err := Apply(context.Background(), plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartial)
	assert.ErrorIs(t, err, errWrite)

	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "append history", applyErr.Step)
	assert.Equal(t, []string{"replace stock"}, applyErr.Applied)
	assert.Equal(t, "failed to append history after replace stock: write failed", err.Error())
}

func TestApply_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := NewPlan()
	plan.Add("replace stock", func(context.Context) error { return nil })

	err := Apply(ctx, plan)
	assert.ErrorIs(t, err, context.Canceled)
}
