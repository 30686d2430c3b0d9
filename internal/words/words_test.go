package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlefile.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one word per line",
			content: "arbres\nwordle\ncassis\n",
			want:    []string{"arbres", "wordle", "cassis"},
		},
		{
			name:    "skips empty lines and keeps file order",
			content: "\nzyxwvu\n\n\nabcdef\n",
			want:    []string{"zyxwvu", "abcdef"},
		},
		{
			name:    "crlf and case are normalized",
			content: "Arbres\r\nWORDLE\r\n",
			want:    []string{"arbres", "wordle"},
		},
		{
			name:    "duplicates keep the first occurrence",
			content: "arbres\nwordle\narbres\n",
			want:    []string{"arbres", "wordle"},
		},
		{
			name:    "no trailing newline",
			content: "arbres\nwordle",
			want:    []string{"arbres", "wordle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Load(writeWordFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Words())
			assert.Equal(t, 6, v.WordLength())
			assert.Equal(t, len(tt.want), v.Len())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeWordFile(t, "\n\n"))
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestNew_MixedLengths(t *testing.T) {
	_, err := New([]string{"arbres", "joutera"})
	assert.ErrorIs(t, err, ErrMixedLengths)
}

func TestVocabulary_Contains(t *testing.T) {
	v, err := New([]string{"arbres", "wordle"})
	require.NoError(t, err)

	assert.True(t, v.Contains("wordle"))
	assert.False(t, v.Contains("cassis"))
	assert.Equal(t, "arbres", v.At(0))

	// Words hands out a copy.
	ws := v.Words()
	ws[0] = "zzzzzz"
	assert.Equal(t, "arbres", v.At(0))
}

func TestEmbedded(t *testing.T) {
	for _, n := range []int{6, 7, 8} {
		v, err := Embedded(n)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, n, v.WordLength())
		assert.NotZero(t, v.Len())
	}

	_, err := Embedded(5)
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	six, err := New([]string{"arbres"})
	require.NoError(t, err)
	eight, err := New([]string{"abatardi"})
	require.NoError(t, err)

	s := NewSet(eight, six)
	assert.Equal(t, []int{6, 8}, s.Lengths())

	got, ok := s.Get(6)
	require.True(t, ok)
	assert.Same(t, six, got)

	_, ok = s.Get(7)
	assert.False(t, ok)
}
