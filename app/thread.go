package main

import (
	"context"
	"strings"

	"github.com/hiclinic/crm-web/internal/crm"
	"github.com/hiclinic/crm-web/internal/format"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ThreadView shows one customer's conversation and sends outbound
// WhatsApp texts. Every load re-downloads the entire history; there is
// no incremental fetch.
type ThreadView struct {
	app.Compo

	customerID string
	items      []crm.ThreadItem
	body       string
	errMsg     string
}

func (v *ThreadView) OnMount(ctx app.Context) {
	v.loadFromURL(ctx)
}

func (v *ThreadView) OnNav(ctx app.Context) {
	v.loadFromURL(ctx)
}

func (v *ThreadView) loadFromURL(ctx app.Context) {
	parts := strings.Split(strings.Trim(ctx.Page().URL().Path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "inbox" {
		v.customerID = parts[1]
	}
	v.load(ctx)
}

func (v *ThreadView) load(ctx app.Context) {
	v.errMsg = ""

	client := newClient()
	id := v.customerID

	ctx.Async(func() {
		items, err := client.Thread(context.Background(), id)

		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.errMsg = err.Error()
				return
			}
			v.items = items
		})
	})
}

// canSend rejects empty and all-whitespace drafts before any network
// call is made.
func canSend(body string) bool {
	return strings.TrimSpace(body) != ""
}

func (v *ThreadView) onBodyInput(ctx app.Context, e app.Event) {
	v.body = ctx.JSSrc().Get("value").String()
}

func (v *ThreadView) onSend(ctx app.Context, e app.Event) {
	if !canSend(v.body) {
		return
	}

	client := newClient()
	id, body := v.customerID, v.body

	ctx.Async(func() {
		err := client.SendText(context.Background(), id, body)

		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				// The draft stays in the input on failure.
				v.errMsg = err.Error()
				return
			}
			v.body = ""
			v.load(ctx)
		})
	})
}

func (v *ThreadView) Render() app.UI {
	return layout(
		app.Div().Class("row spread").Body(
			app.H2().Text("Conversation"),
			app.A().Href("/inbox").Text("← Back"),
		),
		app.If(v.errMsg != "", func() app.UI {
			return app.P().Class("error").Text(v.errMsg)
		}),
		app.Div().Class("thread").Body(
			app.Range(v.items).Slice(func(i int) app.UI {
				return renderThreadItem(v.items[i])
			}),
			app.If(len(v.items) == 0, func() app.UI {
				return app.P().Class("muted").Text("No messages yet.")
			}),
		),
		app.Div().Class("row composer").Body(
			app.Input().
				Placeholder("Type a WhatsApp message...").
				Value(v.body).
				OnInput(v.onBodyInput),
			app.Button().OnClick(v.onSend).Text("Send"),
		),
	)
}

func renderThreadItem(it crm.ThreadItem) app.UI {
	side := "left"
	if it.Direction == crm.DirectionOutbound {
		side = "right"
	}

	meta := it.Direction + " · " + it.Channel + " · " + format.When(it.OccurredAt)
	if it.Status != "" {
		meta += " · " + it.Status
	}

	return app.Div().Class("bubble-row " + side).Body(
		app.Div().Class("bubble").Body(
			app.Div().Class("bubble-meta").Text(meta),
			app.Div().Class("bubble-body").Text(it.Content),
		),
	)
}
