package main

import (
	"context"

	"github.com/hiclinic/crm-web/internal/crm"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const (
	modeLogin    = "login"
	modeRegister = "register"
)

// AuthView collects credentials and stores the returned bearer token.
// Login and register are the same form; the mode toggle is free and
// independent of network state.
type AuthView struct {
	app.Compo

	email    string
	password string
	mode     string
	errMsg   string
	okMsg    string
}

func (v *AuthView) OnInit() {
	v.email = "admin@example.com"
	v.password = "ChangeMe123!"
	v.mode = modeLogin
}

func (v *AuthView) onEmailInput(ctx app.Context, e app.Event) {
	v.email = ctx.JSSrc().Get("value").String()
}

func (v *AuthView) onPasswordInput(ctx app.Context, e app.Event) {
	v.password = ctx.JSSrc().Get("value").String()
}

func (v *AuthView) onToggleMode(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if v.mode == modeLogin {
		v.mode = modeRegister
	} else {
		v.mode = modeLogin
	}
}

func (v *AuthView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	v.errMsg = ""
	v.okMsg = ""

	client := newClient()
	mode := v.mode
	email, password := v.email, v.password

	ctx.Async(func() {
		var resp crm.TokenResponse
		var err error
		if mode == modeRegister {
			resp, err = client.Register(context.Background(), email, password)
		} else {
			resp, err = client.Login(context.Background(), email, password)
		}

		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.errMsg = err.Error()
				return
			}
			client.Session.SetToken(resp.AccessToken)
			v.okMsg = "Token saved. Go to Inbox."
		})
	})
}

func (v *AuthView) Render() app.UI {
	submitLabel := "Login"
	toggleLabel := "Switch to Register"
	if v.mode == modeRegister {
		submitLabel = "Register"
		toggleLabel = "Switch to Login"
	}

	return layout(
		app.H2().Text("Sign in"),
		app.P().Class("muted").Text("This is a minimal UI. It stores the access token in localStorage."),
		app.Form().Class("auth-form").OnSubmit(v.onSubmit).Body(
			app.Label().Body(
				app.Text("Email"),
				app.Input().Type("text").Value(v.email).OnInput(v.onEmailInput),
			),
			app.Label().Body(
				app.Text("Password"),
				app.Input().Type("password").Value(v.password).OnInput(v.onPasswordInput),
			),
			app.Div().Class("row").Body(
				app.Button().Type("submit").Text(submitLabel),
				app.Button().Type("button").OnClick(v.onToggleMode).Text(toggleLabel),
			),
		),
		app.If(v.errMsg != "", func() app.UI {
			return app.P().Class("error").Text(v.errMsg)
		}),
		app.If(v.okMsg != "", func() app.UI {
			return app.P().Class("ok").Text(v.okMsg)
		}),
	)
}
