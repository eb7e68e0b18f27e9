package slice

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResolveUser(t *testing.T) {
	u, err := ResolveUser("root")
	assert.Equal(t, nil, err)
	assert.Equal(t, "root", u.User)
	assert.Equal(t, 0, u.Uid)
	assert.Equal(t, "user-0.slice", u.Name)
}

func TestResolveUserUnknown(t *testing.T) {
	_, err := ResolveUser("squota-no-such-user")
	assert.Error(t, err)
	assert.True(t, IsUnknownUser(err))
}

func TestIsUnknownUserOtherError(t *testing.T) {
	assert.False(t, IsUnknownUser(errors.New("boom")))
	assert.False(t, IsUnknownUser(nil))
}
