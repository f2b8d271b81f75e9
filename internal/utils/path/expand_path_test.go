package path

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("~/.config/platinfo.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "platinfo.yaml"), got)

	got, err = ExpandPath("x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = ExpandPath("")
	assert.Error(t, err)
}
