package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "problems.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadKorfProblemsParsesInFileOrder(t *testing.T) {
	contents := "1 1 2 3 4 5 6 7 8 9 10 11 12 13 14 0 15\n" +
		"2 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15\n"
	path := writeTempFile(t, contents)

	boards, err := LoadKorfProblems(path)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, 14, boards[0].BlankIndex())
	assert.Equal(t, 0, boards[1].BlankIndex())
}

func TestLoadKorfProblemsSkipsBlankLines(t *testing.T) {
	contents := "\n1 1 2 3 4 5 6 7 8 9 10 11 12 13 14 0 15\n\n"
	path := writeTempFile(t, contents)

	boards, err := LoadKorfProblems(path)
	require.NoError(t, err)
	require.Len(t, boards, 1)
}

func TestLoadKorfProblemsMalformedLine(t *testing.T) {
	contents := "1 1 2 3\n"
	path := writeTempFile(t, contents)

	_, err := LoadKorfProblems(path)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func TestLoadKorfProblemsNonPermutation(t *testing.T) {
	// Duplicate tile value 1: not a permutation of 0..15.
	contents := "1 1 1 3 4 5 6 7 8 9 10 11 12 13 14 0 15\n"
	path := writeTempFile(t, contents)

	_, err := LoadKorfProblems(path)
	require.Error(t, err)
}

func TestLoadKorfProblemsMissingFile(t *testing.T) {
	_, err := LoadKorfProblems("/nonexistent/path.txt")
	require.Error(t, err)
}
