package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSilent(t *testing.T) {
	base := errors.New("malformed")
	err := fmt.Errorf("reading: %w", WrapSilent(base))
	assert.True(t, IsSilent(err))
	assert.ErrorIs(t, err, base)
	assert.EqualError(t, err, "reading: malformed")
	assert.False(t, IsSilent(base))
	assert.NoError(t, WrapSilent(nil))
}
