package catalog

import (
	"fmt"
	"net"
	"strings"
)

// Mode is the operating mode the resolver decided on.
type Mode string

const (
	// ModeRemote means a backend base URL was resolved and will be used.
	ModeRemote Mode = "remote"
	// ModeLocalOnly means no backend is assumed reachable; the client serves
	// reads from the local backup and rejects writes.
	ModeLocalOnly Mode = "local-only"
)

// Default remote address parts used when no explicit override is configured.
const (
	defaultPort     = "3001"
	defaultBasePath = "/api"
)

// Endpoint is the resolver's decision: either a remote base URL or
// local-only operation.
type Endpoint struct {
	Mode    Mode
	BaseURL string
}

// Resolve decides how to reach the backend from the current host context and
// an optional explicit override. It is a pure function; callers re-evaluate
// it per operation rather than memoizing the decision.
//
// Decision order, first match wins:
//  1. explicit override → remote at that address
//  2. deployed host (neither loopback nor a bare IPv4 literal) → local-only
//  3. non-loopback IPv4 literal (e.g. a LAN address) → remote at that host
//     on the default port and path
//  4. loopback → remote at the default loopback address
func Resolve(host, override string) Endpoint {
	if override != "" {
		return Endpoint{Mode: ModeRemote, BaseURL: strings.TrimSuffix(override, "/")}
	}

	host = strings.TrimSpace(host)
	if isLoopback(host) {
		return Endpoint{
			Mode:    ModeRemote,
			BaseURL: fmt.Sprintf("http://localhost:%s%s", defaultPort, defaultBasePath),
		}
	}

	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		return Endpoint{
			Mode:    ModeRemote,
			BaseURL: fmt.Sprintf("http://%s:%s%s", host, defaultPort, defaultBasePath),
		}
	}

	// A named, non-loopback host is a static deployment with no co-located
	// backend to talk to.
	return Endpoint{Mode: ModeLocalOnly}
}

// isLoopback reports whether host names the local machine. An empty host is
// treated as loopback so a zero-value config behaves like local development.
func isLoopback(host string) bool {
	if host == "" || host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
