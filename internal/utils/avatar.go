package utils

import (
	"net/url"
	"strings"
)

// GenerateAvatarURL builds a deterministic placeholder avatar from a
// display name using the DiceBear initials style. Spaces are
// percent-encoded, not plus-encoded.
func GenerateAvatarURL(name string) string {
	seed := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(name)), "+", "%20")
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + seed
}
