package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	t.Run("illegal characters removed", func(t *testing.T) {
		assert.Equal(t, "RFT-001 Stage 2 Works", SanitizeFilename(`RFT-001: Stage 2 / Works?`))
		assert.Equal(t, "ab", SanitizeFilename(`a\*"<>|b`))
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		assert.Equal(t, "a b c", SanitizeFilename("  a\t\tb \n c  "))
	})

	t.Run("control characters removed", func(t *testing.T) {
		assert.Equal(t, "ab", SanitizeFilename("a\x00\x1fb\x7f"))
	})

	t.Run("long name truncated", func(t *testing.T) {
		long := strings.Repeat("x", 300)
		got := SanitizeFilename(long)
		assert.Len(t, []rune(got), 120)
	})

	t.Run("empty result falls back", func(t *testing.T) {
		assert.Equal(t, DefaultFilename, SanitizeFilename(""))
		assert.Equal(t, DefaultFilename, SanitizeFilename(`///:::***`))
		assert.Equal(t, DefaultFilename, SanitizeFilename("   "))
	})

	t.Run("unicode preserved", func(t *testing.T) {
		assert.Equal(t, "招标文件 RFT-001", SanitizeFilename("招标文件 RFT-001"))
	})
}
