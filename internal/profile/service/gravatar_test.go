package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	t.Run("derives the expected URL", func(t *testing.T) {
		// md5("jane@example.com")
		want := "https://www.gravatar.com/avatar/9e26471d35a78862c17e467d87cddedf?d=identicon"
		assert.Equal(t, want, GravatarURL("jane@example.com"))
	})

	t.Run("normalizes case and whitespace before hashing", func(t *testing.T) {
		base := GravatarURL("jane@example.com")
		assert.Equal(t, base, GravatarURL("  Jane@Example.COM  "))
	})

	t.Run("different addresses produce different URLs", func(t *testing.T) {
		assert.NotEqual(t, GravatarURL("jane@example.com"), GravatarURL("john@example.com"))
	})
}
