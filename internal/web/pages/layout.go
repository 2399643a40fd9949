package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Amphi"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				StyleEl(g.Raw(stylesheet)),
			),
			Body(
				g.Group(content),
				Script(g.Raw(searchScript)),
			),
		),
	})
}

const stylesheet = `
body{margin:0;min-height:100vh;background:#06000f;color:#eee;font-family:system-ui,sans-serif}
.topbar{display:flex;align-items:center;justify-content:space-between;padding:.75rem 1.5rem}
.topbar details{position:relative}
.topbar summary{cursor:pointer;list-style:none}
.cards{position:absolute;display:flex;gap:.5rem;top:2rem;left:0}
.card{min-width:10rem;padding:.75rem;border-radius:.75rem}
.card a{display:block;color:inherit;text-decoration:none;margin:.25rem 0}
.actions{display:flex;gap:1rem;align-items:center}
.actions button,.hero button{background:none;border:1px solid #444;border-radius:999px;color:inherit;padding:.4rem 1rem;cursor:pointer}
.shiny{background:linear-gradient(120deg,#b5b5b5a4 40%,#fff 50%,#b5b5b5a4 60%);background-size:200% 100%;-webkit-background-clip:text;color:transparent;animation:shine 2s linear infinite}
@keyframes shine{0%{background-position:100%}100%{background-position:-100%}}
.hero{display:flex;flex-direction:column;align-items:center;gap:1.5rem;padding-top:18vh}
.hero input{width:min(32rem,90vw);padding:.8rem 1rem;border-radius:1rem;border:1px solid #ffffff33;background:#ffffff12;color:inherit}
.logos{position:fixed;right:2rem;bottom:2rem;width:20rem;overflow:hidden;white-space:nowrap}
.logos ul{display:inline-flex;gap:3rem;margin:0;padding:0;list-style:none;animation:loop 20s linear infinite}
.logos:hover ul{animation-play-state:paused}
.logos a{color:#aaa;text-decoration:none}
@keyframes loop{from{transform:translateX(0)}to{transform:translateX(-50%)}}
dialog{width:min(40rem,92vw);border:1px solid #ffffff22;border-radius:1rem;background:#140a22;color:inherit;padding:1rem}
dialog::backdrop{background:#0008;backdrop-filter:blur(4px)}
dialog input{width:100%;box-sizing:border-box;padding:.6rem;border-radius:.5rem;border:1px solid #ffffff22;background:#0000;color:inherit}
#search-results{list-style:none;padding:0;margin:.75rem 0 0}
#search-results li{padding:.5rem;border-radius:.5rem;cursor:pointer}
#search-results li[aria-selected=true]{background:#ffffff14}
.chip{font-size:.75rem;border:1px solid #ffffff33;border-radius:999px;padding:0 .5rem;margin-left:.5rem}
.muted{color:#888;font-size:.875rem}
`
