package requestctx

import (
	"net"
	"strings"

	"github.com/google/uuid"
)

// Caller identifies who is making a request. It is either anonymous or an
// authenticated identity; there is no third state. Handlers build a Caller
// from the auth middleware output and thread it into services explicitly,
// so nothing downstream reads auth state out of hidden request globals.
type Caller struct {
	identityID uuid.UUID
	anonymous  bool
}

// Anonymous returns a caller with no established identity.
func Anonymous() Caller {
	return Caller{anonymous: true}
}

// Authenticated returns a caller backed by the given identity.
func Authenticated(identityID uuid.UUID) Caller {
	return Caller{identityID: identityID}
}

// IsAnonymous reports whether the caller has no established identity.
func (c Caller) IsAnonymous() bool {
	return c.anonymous || c.identityID == uuid.Nil
}

// IdentityID returns the caller's identity id and whether one exists.
func (c Caller) IdentityID() (uuid.UUID, bool) {
	if c.IsAnonymous() {
		return uuid.Nil, false
	}
	return c.identityID, true
}

// Context carries the per-request values that services are allowed to see:
// the caller and the network origin of the request. It is a plain value,
// built once per request by the HTTP layer.
type Context struct {
	Caller Caller

	// ForwardedFor is the raw X-Forwarded-For header value, empty when the
	// header was not sent.
	ForwardedFor string

	// RemoteAddr is the direct connection's address with any port already
	// stripped. Empty when the transport did not report one.
	RemoteAddr string
}

// ClientIP derives the submitter address for a request.
//
// The leftmost entry of the forwarded header wins when the header is
// non-empty; it is treated as the nearest-client-reported address. This is
// a documented trust assumption, not a security guarantee - the header is
// spoofable. With no forwarded header the direct address is used, and when
// both are absent the result is the empty string, which is a valid value
// rather than an error.
func (rc Context) ClientIP() string {
	if rc.ForwardedFor != "" {
		first := strings.Split(rc.ForwardedFor, ",")[0]
		return strings.TrimSpace(first)
	}
	return rc.RemoteAddr
}

// StripPort removes the :port suffix from a net.Addr-style string.
// Returns the input unchanged when it carries no port.
func StripPort(addr string) string {
	if addr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
