package filex

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "Intro CS1 7", "Intro CS1 7"},
		{"allowed punctuation kept", "step_1.md - draft", "step_1.md - draft"},
		{"slashes replaced", "a/b\\c", "a_b_c"},
		{"cyrillic replaced rune-for-rune", "Тема 1", "____ 1"},
		{"question marks replaced", "Зачем это учить??", "_____ ___ _______"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Intro CS1 7",
		"Тема: контейнеры (docker)",
		"a/b?c*d",
		"  spaced  out  ",
	}
	for _, s := range inputs {
		once := SanitizeName(s)
		require.Equal(t, once, SanitizeName(once), "input %q", s)
	}
}

func TestSanitizeName_PreservesRuneLength(t *testing.T) {
	inputs := []string{
		"Intro CS1 7",
		"Тема 1: сети и протоколы",
		"??!!//\\\\",
		"mixed Текст and ascii",
	}
	for _, s := range inputs {
		require.Equal(t,
			utf8.RuneCountInString(s),
			utf8.RuneCountInString(SanitizeName(s)),
			"input %q", s)
	}
}

func TestEnsureDir_CreatesNested(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "out", "Intro CS1 7", "assets")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "chapter")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "assets")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.Error(t, EnsureDir(path))
}
