// Package identity derives stable user identifiers and persists the
// signed-in identity record across process restarts.
package identity

import (
	"encoding/base64"
	"regexp"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// maxIDLen bounds derived ids so they stay short enough for URL paths.
const maxIDLen = 20

// DeriveUserID maps an email address to a stable, URL-safe user id: the
// base64 encoding of the email, stripped to alphanumerics, truncated to 20
// characters. The same email always yields the same id.
//
// This is a placeholder identity scheme, not authentication: the encoding is
// reversible and unsalted, and there is no credential verification. It exists
// so the backend can key profile and session records per user until a real
// auth system lands.
func DeriveUserID(email string) string {
	id := base64.StdEncoding.EncodeToString([]byte(email))
	id = nonAlnum.ReplaceAllString(id, "")
	if len(id) > maxIDLen {
		id = id[:maxIDLen]
	}
	return id
}
