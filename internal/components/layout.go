package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string

	// WalletScriptURL loads the browser wallet library when set.
	WalletScriptURL string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Landing"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;600&display=swap")),
				Link(Rel("stylesheet"), Href("/static/navbar.css")),
			),
			Body(
				g.Group(content),

				g.If(config.WalletScriptURL != "", Script(Src(config.WalletScriptURL), Defer())),
				Script(Type("module"), Src("/static/js/navbar.js")),
			),
		),
	})
}

// Home is the page shell: a single container holding the navbar.
func Home(config PageConfig, navbar g.Node) g.Node {
	return Layout(config,
		Main(Class("container"), navbar),
	)
}
