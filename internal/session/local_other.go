//go:build !js

package session

// Local is a no-op outside the browser: reads are empty and writes are
// dropped. Requests made in that context go out unauthenticated.
type Local struct{}

func (Local) Token() string {
	return ""
}

func (Local) SetToken(token string) {}
