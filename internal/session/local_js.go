//go:build js

package session

import "syscall/js"

// Local reads and writes the token in the browser's localStorage. When
// storage is unavailable (private mode, storage disabled) it degrades
// to empty reads and silent writes instead of failing.
type Local struct{}

func (Local) Token() (token string) {
	defer func() { _ = recover() }()

	ls := js.Global().Get("localStorage")
	if !ls.Truthy() {
		return ""
	}
	v := ls.Call("getItem", StorageKey)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

func (Local) SetToken(token string) {
	defer func() { _ = recover() }()

	ls := js.Global().Get("localStorage")
	if !ls.Truthy() {
		return
	}
	ls.Call("setItem", StorageKey, token)
}
