package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "turnero/internal/errors"
)

func echoRegistry(t *testing.T, params ...Param) (*Registry, *Args) {
	t.Helper()
	var captured Args
	reg := NewRegistry()
	err := reg.Register(
		Descriptor{Name: "echo", Description: "echoes its arguments", Params: params},
		func(ctx context.Context, args Args) (*Result, error) {
			captured = args
			return &Result{Success: true, Message: "echoed"}, nil
		})
	require.NoError(t, err)
	return reg, &captured
}

func TestDispatchMissingToolName(t *testing.T) {
	reg, _ := echoRegistry(t)
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "", nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingToolName)
}

func TestDispatchUnknownTool(t *testing.T) {
	reg, _ := echoRegistry(t)
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "nope", nil)
	var unknown *apperrors.UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
}

func TestDispatchLookupIsCaseSensitive(t *testing.T) {
	reg, _ := echoRegistry(t)
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "Echo", nil)
	var unknown *apperrors.UnknownToolError
	assert.ErrorAs(t, err, &unknown)
}

func TestDispatchStrictRejectsMissingRequiredParam(t *testing.T) {
	reg, _ := echoRegistry(t, Param{Name: "who", Type: TypeString, Required: true, Default: "nobody"})
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "echo", map[string]any{})
	var missing *apperrors.MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "who", missing.Name)
}

func TestDispatchPermissiveSubstitutesDefault(t *testing.T) {
	reg, captured := echoRegistry(t, Param{Name: "who", Type: TypeString, Required: true, Default: "nobody"})
	d := NewDispatcher(reg, true, zap.NewNop())

	res, err := d.Dispatch(context.Background(), "echo", map[string]any{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "nobody", captured.String("who"))
}

func TestDispatchMissingOptionalParamIsSkipped(t *testing.T) {
	reg, captured := echoRegistry(t, Param{Name: "notes", Type: TypeString, Required: false})
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "echo", map[string]any{})
	require.NoError(t, err)
	_, present := (*captured)["notes"]
	assert.False(t, present)
}

func TestDispatchCoercesIntegers(t *testing.T) {
	reg, captured := echoRegistry(t, Param{Name: "count", Type: TypeInteger, Required: true})
	d := NewDispatcher(reg, false, zap.NewNop())

	// JSON numbers arrive as float64.
	_, err := d.Dispatch(context.Background(), "echo", map[string]any{"count": float64(3)})
	require.NoError(t, err)
	n, ok := captured.Int("count")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, err = d.Dispatch(context.Background(), "echo", map[string]any{"count": "7"})
	require.NoError(t, err)
	n, ok = captured.Int("count")
	require.True(t, ok)
	assert.Equal(t, 7, n)
}

func TestDispatchBadCoercionIsFailedResult(t *testing.T) {
	reg, _ := echoRegistry(t, Param{Name: "count", Type: TypeInteger, Required: true})
	d := NewDispatcher(reg, false, zap.NewNop())

	res, err := d.Dispatch(context.Background(), "echo", map[string]any{"count": "many"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "count")
}

func TestDispatchStringCoercionOfScalars(t *testing.T) {
	reg, captured := echoRegistry(t, Param{Name: "note", Type: TypeString, Required: true})
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "echo", map[string]any{"note": float64(12)})
	require.NoError(t, err)
	assert.Equal(t, "12", captured.String("note"))
}

func TestDispatchUndeclaredArgsPassThrough(t *testing.T) {
	reg, captured := echoRegistry(t)
	d := NewDispatcher(reg, false, zap.NewNop())

	_, err := d.Dispatch(context.Background(), "echo", map[string]any{"extra": "kept"})
	require.NoError(t, err)
	assert.Equal(t, "kept", (*captured)["extra"])
}
