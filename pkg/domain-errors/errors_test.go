package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Run("HasCode sees through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeNotFound, "recipient not found"))
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeConflict))
	})

	t.Run("uncoded errors are internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
		assert.False(t, HasCode(nil, CodeInternal))
	})

	t.Run("Wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Wrap(cause, CodeInternal, "failed to load recipient")
		require.Error(t, err)
		assert.True(t, Is(err, cause))
		assert.Equal(t, "failed to load recipient: connection reset", err.Error())
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
	})
}

func TestResultCodeOf(t *testing.T) {
	tests := []struct {
		code Code
		want ResultCode
	}{
		{CodeForbidden, ResultNotAdmin},
		{CodeConflict, ResultDuplicate},
		{CodeNotFound, ResultNotFound},
		{CodeExpired, ResultVerificationExpired},
		{CodeValidation, ResultNone},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, ResultCodeOf(New(tt.code, "x")))
		})
	}
	assert.Equal(t, ResultNone, ResultCodeOf(nil))
	assert.Equal(t, 100, int(ResultNotAdmin))
	assert.Equal(t, 103, int(ResultVerificationExpired))
}
