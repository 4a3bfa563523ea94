package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/landing/internal/wallet"
)

// MenuID is the id of the menu list; fragment swaps replace this element only.
const MenuID = "navbar-menu"

// SearchPath receives the search form.
const SearchPath = "/search"

// Class names from static/navbar.css.
const (
	classNavbar    = "navbar"
	classLogo      = "logo"
	classSearchBar = "searchBar"
	classMenu      = "menu"
	classMenuItem  = "menuItem"
)

// MenuEntry is one item of the navbar menu.
type MenuEntry struct {
	Label string
}

var staticMenu = []MenuEntry{
	{Label: "Projects"},
	{Label: "People"},
	{Label: "How it works"},
}

// DashboardEntry is shown only while a wallet is connected.
var DashboardEntry = MenuEntry{Label: "Dashboard"}

// MenuEntries returns the menu for status: the static entries, followed by
// DashboardEntry when status is connected.
func MenuEntries(status wallet.ConnectionStatus) []MenuEntry {
	entries := make([]MenuEntry, len(staticMenu), len(staticMenu)+1)
	copy(entries, staticMenu)
	if status.Connected() {
		entries = append(entries, DashboardEntry)
	}
	return entries
}

// Navbar renders the top navigation for status, placing connectButton as is.
func Navbar(status wallet.ConnectionStatus, connectButton g.Node) g.Node {
	return Nav(
		Class(classNavbar),
		Div(Class(classLogo), g.Text("Logo")),
		SearchForm(),
		NavMenu(status),
		connectButton,
	)
}

// SearchForm is a placeholder; submissions are logged and otherwise ignored.
func SearchForm() g.Node {
	return Form(
		Action(SearchPath),
		Method("post"),
		g.Attr("data-navbar-search", ""),
		Input(
			Class(classSearchBar),
			Type("text"),
			Name("q"),
			Placeholder("Search..."),
		),
	)
}

// NavMenu renders the menu list on its own so it can be swapped in place.
func NavMenu(status wallet.ConnectionStatus) g.Node {
	return Ul(
		ID(MenuID),
		Class(classMenu),
		g.Attr("data-status", status.String()),
		g.Map(MenuEntries(status), func(e MenuEntry) g.Node {
			return Li(Class(classMenuItem), g.Text(e.Label))
		}),
	)
}
