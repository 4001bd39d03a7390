// Package gravatar builds avatar URLs for comment authors.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	size     = 100
	rating   = "g"
	fallback = "retro"
	baseURL  = "https://www.gravatar.com/avatar"
)

// URL returns the gravatar image URL for the given email address.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=%d&d=%s&r=%s", baseURL, hash, size, fallback, rating)
}
