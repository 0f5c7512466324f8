package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := apperr.UnknownArea("Tail")

	wrapped := apperr.Wrap(base, "resolving aimed shot")

	require.NotNil(t, wrapped)
	assert.Equal(t, apperr.CodeUnknownArea, wrapped.Code)
	assert.Equal(t, "Tail", wrapped.Meta["area"])
	assert.True(t, apperr.IsUnknownArea(wrapped))
	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "resolving aimed shot")
	assert.Contains(t, wrapped.Error(), `"Tail"`)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := apperr.Wrap(fmt.Errorf("boom"), "loading pack")

	assert.Equal(t, apperr.CodeUnknown, wrapped.Code)
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Nil(t, apperr.GetMeta(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeInternal, "nothing"))
}

func TestWrapWithCode_OverridesCode(t *testing.T) {
	wrapped := apperr.WrapWithCode(apperr.NotFound("missing"), apperr.CodeInternal, "store failure")

	assert.Equal(t, apperr.CodeInternal, apperr.GetCode(wrapped))
	assert.False(t, apperr.IsNotFound(wrapped))
}

func TestWrap_MetaIsCopied(t *testing.T) {
	base := apperr.PathNotFound("a.b", "b")
	wrapped := apperr.Wrap(base, "outer").WithMeta("extra", true)

	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
	assert.Equal(t, "a.b", wrapped.Meta["path"])
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "not found", err: apperr.NotFoundf("pack %s", "x"), check: apperr.IsNotFound},
		{name: "invalid argument", err: apperr.InvalidArgumentf("bad %s", "y"), check: apperr.IsInvalidArgument},
		{name: "validation", err: apperr.Validationf("face %d twice", 3), check: apperr.IsValidation},
		{name: "unknown face", err: apperr.UnknownFace(11), check: apperr.IsUnknownArea},
		{name: "path", err: apperr.PathNotFound("a", "a"), check: apperr.IsPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(fmt.Errorf("plain")))
		})
	}
}
