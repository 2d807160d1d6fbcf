package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/randomness/pkg/randomness"
	"pkg.jsn.cam/randomness/pkg/randomness/decorator"
	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

// execute runs the root command. Cobra keeps flag state between runs, so
// the commands below are only executed once each.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "settings.db")
	common := []string{"--database", db, "--config", filepath.Join(dir, "none.yaml")}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "none.yaml"), nil, 0o600))

	t.Run("types", func(t *testing.T) {
		out := execute(t, append([]string{"types"}, common...)...)
		require.Contains(t, out, "%Int[...]")
		require.Contains(t, out, "uds")
		require.Contains(t, out, "minValue (long)")
	})

	t.Run("generate", func(t *testing.T) {
		require := require.New(t)

		out := execute(t, append([]string{"generate", "integer",
			"--set", "minValue=3", "--set", "maxValue=3", "--count", "4", "--seed", "1"}, common...)...)
		require.Equal("3\n3\n3\n3\n", out)
	})

	t.Run("save", func(t *testing.T) {
		out := execute(t, append([]string{"scheme", "save", "codes",
			"--descriptor", "C-%Int[minValue=10,maxValue=10]"}, common...)...)
		require.Contains(t, out, `Saved uds scheme "codes"`)
	})

	t.Run("list", func(t *testing.T) {
		out := execute(t, append([]string{"scheme", "list"}, common...)...)
		require.Contains(t, out, "codes")
	})

	t.Run("show", func(t *testing.T) {
		out := execute(t, append([]string{"scheme", "show", "codes"}, common...)...)
		require.Contains(t, out, `"descriptor": "C-%Int[minValue=10,maxValue=10]"`)
	})

	t.Run("validate saved", func(t *testing.T) {
		out := execute(t, append([]string{"validate", "--scheme", "codes"}, common...)...)
		require.True(t, strings.HasPrefix(out, "uds scheme "))
	})

	t.Run("delete", func(t *testing.T) {
		out := execute(t, append([]string{"scheme", "delete", "codes"}, common...)...)
		require.Contains(t, out, `Deleted "codes"`)
	})
}

func TestGenerateToFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	g := func(count int) ([]string, error) {
		out := make([]string, count)
		for i := range out {
			out[i] = "ab"
		}
		return out, nil
	}

	var status bytes.Buffer
	require.NoError(generateToFile(g, outputChunk+10, path, &status))

	data, err := os.ReadFile(path)
	require.NoError(err)
	require.Equal(strings.Repeat("ab\n", outputChunk+10), string(data))
	require.Contains(status.String(), "4,106 values")
}

func TestGenerateToFile_OneArraySize(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "arrays.txt")

	sch := scheme.NewIntegerScheme()
	sch.ArrayDecorator = decorator.ArrayDecorator{
		Enabled:   true,
		MinCount:  1,
		MaxCount:  9,
		Separator: ",",
		Affix:     decorator.AffixDecorator{Enabled: true, Descriptor: "[@]"},
	}
	require.NoError(scheme.Validate(sch))

	count := 3 * outputChunk
	var status bytes.Buffer
	require.NoError(generateToFile(scheme.Decorate(sch, randomness.NewRand(7)), count, path, &status))

	data, err := os.ReadFile(path)
	require.NoError(err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(lines, count)

	sizes := make(map[int]int)
	for _, line := range lines {
		sizes[strings.Count(line, ",")+1]++
	}
	require.Len(sizes, 1, "one batch samples one array size: %v", sizes)
}
