package diagnostic

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsAndUnwrap(t *testing.T) {
	err := New(KindIO, "copy static assets", fs.ErrPermission)

	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrTemplate)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "copy static assets: permission denied", err.Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Errorf(KindTemplate, "render Makefile", "missing key %q", "name"))

	assert.Equal(t, KindTemplate, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrap_KeepsExistingKind(t *testing.T) {
	inner := New(KindGenerator, "resolve board", errors.New("unknown board"))

	got := Wrap(KindIO, "write header", inner)
	assert.Equal(t, KindGenerator, KindOf(got))

	assert.NoError(t, Wrap(KindIO, "noop", nil))

	plain := Wrap(KindIO, "write header", errors.New("disk full"))
	var de *Error
	require.ErrorAs(t, plain, &de)
	assert.Equal(t, "write header", de.Op)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "StructuralBoard", KindStructuralBoard.String())
	assert.Equal(t, "IO", KindIO.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestNotifications(t *testing.T) {
	ok := Success()
	assert.False(t, ok.HasError)
	assert.Empty(t, ok.Errors)
	assert.NotNil(t, ok.Warnings)
	assert.NoError(t, ok.Err())
	assert.Equal(t, KindUnknown, ok.Kind())

	cause := New(KindBinding, "bind parameters", errors.New("control assigned twice"))
	failed := Failure(cause)
	assert.True(t, failed.HasError)
	require.Len(t, failed.Errors, 1)
	assert.Equal(t, Notice{Enum: -1, Message: "bind parameters: control assigned twice"}, failed.Errors[0])
	assert.Equal(t, KindBinding, failed.Kind())
	assert.Same(t, cause, failed.Err())
}
