package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	cmd := Completion()

	require.NotNil(t, cmd)
	assert.Equal(t, "completion [bash|zsh|fish|powershell]", cmd.Use)
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
	assert.True(t, cmd.DisableFlagsInUseLine)
}

func TestCompletion_InvalidShell(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion", "invalid"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestCompletion_NoArgs(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion"})

	err := root.Execute()
	assert.Error(t, err)
}
