package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-api/internal/config"
)

func TestDotenvCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"dotenv", "-o", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ".env.default")

	env, err := godotenv.Read(filepath.Join(dir, ".env.default"))
	require.NoError(t, err)
	for _, d := range config.Defaults {
		assert.Equal(t, d.Value, env[d.Key], d.Key)
	}
}

func TestLoadVocabularies(t *testing.T) {
	dir := t.TempDir()
	six := filepath.Join(dir, "six.txt")
	require.NoError(t, os.WriteFile(six, []byte("ARBRES\nwordle\n\n"), 0o644))

	set, err := loadVocabularies(map[int]string{6: six, 7: ""})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, set.Lengths())

	v, ok := set.Get(6)
	require.True(t, ok)
	assert.Equal(t, []string{"arbres", "wordle"}, v.Words())

	embedded, ok := set.Get(7)
	require.True(t, ok)
	assert.True(t, embedded.Contains("joutera"))
}

func TestLoadVocabularies_Errors(t *testing.T) {
	dir := t.TempDir()
	wrong := filepath.Join(dir, "seven.txt")
	require.NoError(t, os.WriteFile(wrong, []byte("joutera\n"), 0o644))

	_, err := loadVocabularies(map[int]string{6: wrong})
	assert.ErrorContains(t, err, "holds 7-letter words")

	_, err = loadVocabularies(map[int]string{6: filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}
