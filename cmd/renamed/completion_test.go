package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCmd(t *testing.T) {
	t.Run("generates a bash script for this binary", func(t *testing.T) {
		root := newRootCmd()
		root.SetArgs([]string{"completion", "bash"})

		var buf bytes.Buffer
		root.SetOut(&buf)

		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "renamed")
	})

	t.Run("documents how to install itself", func(t *testing.T) {
		cmd := newCompletionCmd()
		assert.Contains(t, cmd.Long, "renamed completion bash")
		assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
	})

	t.Run("rejects unknown shells", func(t *testing.T) {
		root := newRootCmd()
		root.SetArgs([]string{"completion", "ruby"})
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))

		require.Error(t, root.Execute())
	})
}
