package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5 of "someone@example.com" per the gravatar docs
	url := URL("someone@example.com")
	assert.Equal(t, "https://www.gravatar.com/avatar/16d113840f999444259f73bac9ab8b10?s=100&d=retro&r=g", url)

	// Case and surrounding whitespace are normalized away
	assert.Equal(t, url, URL("  Someone@Example.COM "))
}
