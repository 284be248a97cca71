package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// layout wraps a view's content in the shared top navigation.
func layout(content ...app.UI) app.UI {
	return app.Div().Body(
		app.Div().Class("topbar").Body(
			app.A().Href("/").Class("brand").Body(
				app.Strong().Text("HiClinic CRM"),
			),
			app.A().Href("/inbox").Text("Inbox"),
			app.A().Href("/analytics").Text("Analytics"),
		),
		app.Div().Class("content").Body(content...),
	)
}
