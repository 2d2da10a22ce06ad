package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("play: %w", ErrInvalidCardIndex)
	assert.Equal(t, ErrCodeInvalidCardIndex, Code(wrapped))
	assert.ErrorIs(t, wrapped, ErrInvalidCardIndex)
	assert.NotErrorIs(t, wrapped, ErrInvalidDeck)

	assert.Equal(t, 0, Code(errors.New("plain")))
	assert.Equal(t, 0, Code(nil))
	assert.Equal(t, "no matching command", ErrNoMatchingCommand.Error())
}
