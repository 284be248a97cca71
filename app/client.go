package main

import (
	"github.com/hiclinic/crm-web/internal/crm"
	"github.com/hiclinic/crm-web/internal/session"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// newClient builds the CRM API client for a view. The base URL comes
// from the shell server through the handler environment; a bare
// handler without the shell falls back to the local development
// backend.
func newClient() *crm.Client {
	base := app.Getenv("CRM_API_URL")
	if base == "" {
		base = crm.DefaultBaseURL
	}
	return crm.New(base, session.Local{})
}
