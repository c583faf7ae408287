package charclass_test

import (
	"testing"

	"bennypowers.dev/vge/internal/charclass"
	"github.com/stretchr/testify/assert"
)

func TestForbidden(t *testing.T) {
	t.Run("quotes, escapes and brackets are forbidden", func(t *testing.T) {
		for _, r := range []rune{'"', '\'', '`', '\\', '['} {
			assert.True(t, charclass.Forbidden(r), "%q should be forbidden", r)
		}
	})

	t.Run("line breaks are forbidden", func(t *testing.T) {
		assert.True(t, charclass.Forbidden('\n'))
		assert.True(t, charclass.Forbidden('\r'))
	})

	t.Run("unicode space-likes are forbidden", func(t *testing.T) {
		for _, r := range []rune{'\u00a0', '\u2009', '\u202f', '\u3000', '\ufeff'} {
			assert.True(t, charclass.Forbidden(r), "U+%04X should be forbidden", r)
		}
	})

	t.Run("plain space is a separator, not forbidden", func(t *testing.T) {
		assert.False(t, charclass.Forbidden(charclass.Separator))
	})

	t.Run("ordinary class characters pass", func(t *testing.T) {
		for _, r := range []rune{'a', 'Z', '0', '-', '_', '/', '.', '!', ':', '(', ')'} {
			assert.False(t, charclass.Forbidden(r), "%q should not be forbidden", r)
		}
	})
}
