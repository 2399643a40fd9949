package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"amphi/internal/domain"
)

func Topbar(groups []domain.NavGroup) g.Node {
	return Header(
		Class("topbar"),

		Details(
			Summary(g.Attr("aria-label", "Open menu"), g.Text("≡ AMPHI")),
			Div(
				Class("cards"),
				g.Group(g.Map(groups, func(group domain.NavGroup) g.Node {
					return Div(
						Class("card"),
						g.Attr("style", "background:"+group.BgColor+";color:"+group.TextColor),
						Strong(g.Text(group.Label)),
						g.Group(g.Map(group.Links, func(link domain.NavLink) g.Node {
							return A(Href(link.Href), g.Attr("aria-label", link.AriaLabel), g.Text("↗ "+link.Label))
						})),
					)
				})),
			),
		),

		Div(
			Class("actions"),
			Button(Type("button"), g.Attr("data-notice", "doc"), g.Text("Doc")),
			Span(Class("shiny"), g.Text("API")),
			Button(Type("button"), g.Attr("data-open-search", ""), g.Text("Search "), Kbd(g.Text("⌘K"))),
		),
	)
}

func Hero() g.Node {
	return Main(
		Class("hero"),
		H1(g.Text("What can I do for you today?")),
		Input(
			Type("text"),
			g.Attr("aria-label", "Ask a question"),
			Placeholder("Type in anything you want to know..."),
		),
		Div(
			Class("actions"),
			Button(Type("button"), g.Text("Get Started")),
			Button(Type("button"), g.Text("Learn More")),
		),
	)
}

func LogoLoop(logos []domain.Logo) g.Node {
	item := func(logo domain.Logo) g.Node {
		return Li(A(Href(logo.Href), Target("_blank"), Rel("noreferrer noopener"), g.Text(logo.Title)))
	}
	return Section(
		Class("logos"),
		g.Attr("aria-label", "Partners"),
		P(Class("muted"), g.Text("Partners")),
		// the list is repeated so the loop can wrap seamlessly
		Ul(
			g.Group(g.Map(logos, item)),
			g.Group(g.Map(logos, item)),
		),
	)
}
