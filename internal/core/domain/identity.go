package domain

import (
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Identity is the sender identity for one client process: the host name
// joined with a ULID. It is generated once, used both as the bearer-token
// subject and inside the default payload, and never changes afterwards.
type Identity string

// NewIdentity generates a fresh sender identity.
func NewIdentity() Identity {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "sigmesh"
	}
	// Hostnames can contain chars awkward in a URL path; keep it tame.
	host = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, host)

	return Identity(host + "_" + ulid.Make().String())
}

// String returns the identity as a plain string.
func (i Identity) String() string { return string(i) }
