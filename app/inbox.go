package main

import (
	"context"

	"github.com/hiclinic/crm-web/internal/crm"
	"github.com/hiclinic/crm-web/internal/format"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var bucketOptions = []struct {
	value string
	label string
}{
	{crm.BucketFollowupDue, "Follow-up due"},
	{crm.BucketOpen, "Open"},
	{crm.BucketWaiting, "Waiting"},
	{crm.BucketClosed, "Closed"},
}

// InboxView lists customers for one bucket, optionally narrowed by a
// free-text query. Any filter change triggers a refetch; responses for
// superseded filters are discarded.
type InboxView struct {
	app.Compo

	bucket  string
	q       string
	rows    []crm.InboxCustomer
	errMsg  string
	loadSeq fetchSeq
}

func (v *InboxView) OnInit() {
	v.bucket = crm.BucketFollowupDue
}

func (v *InboxView) OnMount(ctx app.Context) {
	v.load(ctx)
}

func (v *InboxView) load(ctx app.Context) {
	seq := v.loadSeq.next()
	v.errMsg = ""

	client := newClient()
	bucket, q := v.bucket, v.q

	ctx.Async(func() {
		rows, err := client.Customers(context.Background(), bucket, q)

		ctx.Dispatch(func(ctx app.Context) {
			if !v.loadSeq.current(seq) {
				return
			}
			if err != nil {
				v.errMsg = err.Error()
				return
			}
			v.rows = rows
		})
	})
}

func (v *InboxView) onBucketChange(ctx app.Context, e app.Event) {
	v.bucket = ctx.JSSrc().Get("value").String()
	v.load(ctx)
}

func (v *InboxView) onQueryInput(ctx app.Context, e app.Event) {
	v.q = ctx.JSSrc().Get("value").String()
	v.load(ctx)
}

func (v *InboxView) Render() app.UI {
	return layout(
		app.H2().Text("Inbox"),
		app.Div().Class("row filters").Body(
			app.Select().OnChange(v.onBucketChange).Body(
				app.Range(bucketOptions).Slice(func(i int) app.UI {
					opt := bucketOptions[i]
					return app.Option().
						Value(opt.value).
						Selected(opt.value == v.bucket).
						Text(opt.label)
				}),
			),
			app.Input().
				Placeholder("Search name/phone/email").
				Value(v.q).
				OnInput(v.onQueryInput),
		),
		app.If(v.errMsg != "", func() app.UI {
			return app.P().Class("error").Text(v.errMsg)
		}),
		app.Div().Class("list").Body(
			app.Range(v.rows).Slice(func(i int) app.UI {
				return v.renderRow(v.rows[i])
			}),
			app.If(len(v.rows) == 0 && v.errMsg == "", func() app.UI {
				return app.P().Class("muted").Text("No customers in this bucket.")
			}),
		),
	)
}

func (v *InboxView) renderRow(c crm.InboxCustomer) app.UI {
	contact := c.Phone
	if contact == "" {
		contact = c.Email
	}
	tags := format.ClipTags(c.Tags)

	return app.A().Class("card").Href("/inbox/"+c.ID).Body(
		app.Div().Class("row spread").Body(
			app.Strong().Text(c.Name),
			app.Span().Class("muted").Text(c.Bucket+" · "+c.Stage),
		),
		app.Div().Class("muted").Text(contact),
		app.Div().Class("tags").Body(
			app.Range(tags).Slice(func(i int) app.UI {
				return app.Span().Class("tag").Text(tags[i])
			}),
		),
	)
}
