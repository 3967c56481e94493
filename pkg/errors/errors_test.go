// Test Type: Unit Test
// Description: Tests for the errors package - coded error construction and matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConflict, "target already exists")

	assert.Equal(t, errors.ErrConflict, err.Code)
	assert.Equal(t, "[CONFLICT] target already exists", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := errors.Wrap(inner, errors.ErrSymlinkCreate, "could not create link")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "SYMLINK_CREATE")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Newf(errors.ErrSourceMissing, "source %q does not exist", "/dotfiles/git")
	target := errors.New(errors.ErrSourceMissing, "any message")

	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConflict, "other")))
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrNoCapability, "cannot create symlinks"))

	assert.True(t, errors.IsCode(err, errors.ErrNoCapability))
	assert.False(t, errors.IsCode(err, errors.ErrConflict))
	assert.False(t, errors.IsCode(fmt.Errorf("plain"), errors.ErrConflict))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConflict, "conflict").
		WithDetail("target", "/home/user/.gitconfig").
		WithDetail("kind", "file")

	assert.Equal(t, "/home/user/.gitconfig", err.Details["target"])
	assert.Equal(t, "file", err.Details["kind"])
}
