package main

import (
	"context"
	"sort"
	"strconv"

	"github.com/hiclinic/crm-web/internal/crm"
	"github.com/hiclinic/crm-web/internal/format"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"golang.org/x/sync/errgroup"
)

// AnalyticsView fetches the three aggregates concurrently and renders
// them as cards, a textual bar chart and a table. The initial load is
// all-or-nothing: one failure surfaces as a single top-level error and
// no section renders.
type AnalyticsView struct {
	app.Compo

	summary   *crm.Summary
	leads     []crm.LeadsPoint
	templates []crm.TemplateRow
	errMsg    string
}

func (v *AnalyticsView) OnMount(ctx app.Context) {
	client := newClient()

	ctx.Async(func() {
		var (
			summary   crm.Summary
			leads     []crm.LeadsPoint
			templates []crm.TemplateRow
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			summary, err = client.Summary(context.Background())
			return err
		})
		g.Go(func() error {
			var err error
			leads, err = client.LeadsByDay(context.Background())
			return err
		})
		g.Go(func() error {
			var err error
			templates, err = client.Templates(context.Background())
			return err
		})
		err := g.Wait()

		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.errMsg = err.Error()
				return
			}
			v.summary = &summary
			v.leads = leads
			v.templates = templates
		})
	})
}

func (v *AnalyticsView) Render() app.UI {
	return layout(
		app.H2().Text("Analytics"),
		app.If(v.errMsg != "", func() app.UI {
			return app.P().Class("error").Text(v.errMsg)
		}),
		app.If(v.summary != nil, func() app.UI {
			return v.renderCards(v.summary)
		}),
		app.If(v.summary != nil, func() app.UI {
			return v.renderOutcomes(v.summary)
		}),
		v.renderLeads(),
		v.renderTemplates(),
	)
}

func (v *AnalyticsView) renderCards(s *crm.Summary) app.UI {
	card := func(label, value string) app.UI {
		return app.Div().Class("card").Body(
			app.Strong().Text(label),
			app.Div().Class("big").Text(value),
		)
	}

	return app.Div().Class("cards").Body(
		card("Leads", strconv.Itoa(s.LeadsCreated)),
		card("Inbound", strconv.Itoa(s.InboundReceived)),
		card("Outbound Sent", strconv.Itoa(s.OutboundSent)),
		card("Median First Response", format.MedianMinutes(s.MedianFirstResponseSeconds)),
	)
}

func (v *AnalyticsView) renderOutcomes(s *crm.Summary) app.UI {
	// Sorted for stable rendering; Go map order is random.
	keys := make([]string, 0, len(s.Outcomes))
	for k := range s.Outcomes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return app.Div().Class("panel").Body(
		app.Strong().Text("Outcomes"),
		app.Div().Class("row outcomes").Body(
			app.Range(keys).Slice(func(i int) app.UI {
				k := keys[i]
				return app.Div().Body(
					app.Div().Class("muted").Text(k),
					app.Div().Class("big").Text(strconv.Itoa(s.Outcomes[k])),
					app.Div().Class("muted small").Text("rate: "+format.Percent(s.ConversionRates[k])),
				)
			}),
		),
	)
}

func (v *AnalyticsView) renderLeads() app.UI {
	return app.Div().Class("panel").Body(
		app.Strong().Text("Leads by day"),
		app.Div().Class("chart").Body(
			app.Range(v.leads).Slice(func(i int) app.UI {
				p := v.leads[i]
				return app.Div().Text(
					p.Date + "  |  " + format.Bar(p.Leads) + " (" + strconv.Itoa(p.Leads) + ")",
				)
			}),
			app.If(len(v.leads) == 0, func() app.UI {
				return app.Div().Class("muted").Text("No data yet.")
			}),
		),
	)
}

func (v *AnalyticsView) renderTemplates() app.UI {
	return app.Div().Class("panel").Body(
		app.Strong().Text("Template effectiveness (reply within 7 days)"),
		app.Table().Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Text("Template"),
					app.Th().Text("Sent"),
					app.Th().Text("Replied"),
					app.Th().Text("Rate"),
				),
			),
			app.TBody().Body(
				app.Range(v.templates).Slice(func(i int) app.UI {
					row := v.templates[i]
					return app.Tr().Body(
						app.Td().Text(row.TemplateName),
						app.Td().Text(strconv.Itoa(row.Sent)),
						app.Td().Text(strconv.Itoa(row.RepliedWithin7d)),
						app.Td().Text(format.Percent(row.ReplyRate7d)),
					)
				}),
				app.If(len(v.templates) == 0, func() app.UI {
					return app.Tr().Body(
						app.Td().ColSpan(4).Class("muted").Text("No template data yet."),
					)
				}),
			),
		),
	)
}
