package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCodeThroughFmtWrapping(t *testing.T) {
	base := Wrap("backend_error", "Name must be at least 2 characters", errors.New("status=400"))
	wrapped := fmt.Errorf("submit: %w", base)

	require.True(t, IsCode(wrapped, "backend_error"))
	require.False(t, IsCode(wrapped, "transport_error"))
	require.Equal(t, "backend_error", CodeOf(wrapped))
	require.Equal(t, "Name must be at least 2 characters", MessageOf(wrapped))
	require.Equal(t, "Name must be at least 2 characters: status=400", base.Error())
}

func TestMessageOfForeignError(t *testing.T) {
	require.Equal(t, "", MessageOf(nil))
	require.Equal(t, "boom", MessageOf(errors.New("boom")))
	require.Equal(t, "", CodeOf(errors.New("boom")))
}
