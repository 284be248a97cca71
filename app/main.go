package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	app.Route("/", func() app.Composer { return &AuthView{} })
	app.Route("/inbox", func() app.Composer { return &InboxView{} })
	app.RouteWithRegexp(`^/inbox/.+$`, func() app.Composer { return &ThreadView{} })
	app.Route("/analytics", func() app.Composer { return &AnalyticsView{} })
	app.RunWhenOnBrowser()
}
