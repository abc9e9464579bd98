package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegativeComponents(t *testing.T) {
	for _, cmd := range []string{"magnitude", "inner", "unit"} {
		t.Run(cmd, func(t *testing.T) {
			parser, err := kong.New(&CLI, kong.Name("fields"), kong.Exit(func(int) {}))
			require.NoError(t, err)

			ctx, err := parser.Parse([]string{cmd, "--", "0.3", "-1.2", "2.4"})
			require.NoError(t, err)
			assert.Equal(t, cmd+" <x> <y> <z>", ctx.Command())
			if cmd == "unit" {
				assert.Equal(t, -1.2, CLI.Unit.Y)
			}

			_, err = parser.Parse([]string{cmd, "0.3", "-1.2", "2.4"})
			assert.Error(t, err)
		})
	}
}

func TestHelpMentionsSeparator(t *testing.T) {
	for _, cmd := range []string{"magnitude", "inner", "unit"} {
		t.Run(cmd, func(t *testing.T) {
			var out bytes.Buffer
			parser, err := kong.New(&CLI,
				kong.Name("fields"),
				kong.Writers(&out, &out),
				kong.Exit(func(int) {}))
			require.NoError(t, err)

			_, _ = parser.Parse([]string{cmd, "--help"})
			assert.Contains(t, out.String(), "Use -- before negative components.")
		})
	}
}
