package session

// StorageKey is the localStorage key the bearer token lives under,
// scoped to the browser origin.
const StorageKey = "hiclinic_token"

// Store holds the bearer token used to authenticate CRM API requests.
// Exactly one token is active at a time; SetToken fully replaces the
// prior value for all subsequent requests.
type Store interface {
	Token() string
	SetToken(token string)
}

// Memory keeps the token in process memory. Used in tests and during
// server-side prerendering, where browser storage does not exist.
type Memory struct {
	token string
}

func (m *Memory) Token() string {
	return m.token
}

func (m *Memory) SetToken(token string) {
	m.token = token
}
