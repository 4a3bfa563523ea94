package components

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/landing/internal/wallet"
)

var stubButton = Button(g.Attr("data-testid", "connect-stub"), g.Text("stub"))

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func menuLabels(doc *goquery.Document) []string {
	return doc.Find("ul#" + MenuID + " li.menuItem").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestMenuEntries(t *testing.T) {
	static := []MenuEntry{{"Projects"}, {"People"}, {"How it works"}}
	withDashboard := append(append([]MenuEntry{}, static...), DashboardEntry)

	tests := []struct {
		status wallet.ConnectionStatus
		want   []MenuEntry
	}{
		{wallet.StatusConnected, withDashboard},
		{wallet.StatusDisconnected, static},
		{wallet.StatusConnecting, static},
		{wallet.StatusUnknown, static},
		{"", static},
		{"something-else", static},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MenuEntries(tt.status))
		})
	}
}

func TestMenuEntries_DoesNotLeakStaticSlice(t *testing.T) {
	entries := MenuEntries(wallet.StatusConnected)
	entries[0].Label = "changed"

	assert.Equal(t, "Projects", MenuEntries(wallet.StatusDisconnected)[0].Label)
}

func TestNavbar_Disconnected(t *testing.T) {
	doc := render(t, Navbar(wallet.StatusDisconnected, stubButton))

	assert.Equal(t, 1, doc.Find("nav.navbar").Length())
	assert.Equal(t, "Logo", doc.Find("nav.navbar div.logo").Text())
	assert.Equal(t, []string{"Projects", "People", "How it works"}, menuLabels(doc))
	assert.Equal(t, "disconnected", doc.Find("ul#"+MenuID).AttrOr("data-status", ""))
}

func TestNavbar_Connected(t *testing.T) {
	doc := render(t, Navbar(wallet.StatusConnected, stubButton))

	assert.Equal(t, []string{"Projects", "People", "How it works", "Dashboard"}, menuLabels(doc))
}

func TestNavbar_AlwaysRendersBrandSearchAndButton(t *testing.T) {
	for _, status := range []wallet.ConnectionStatus{
		wallet.StatusUnknown, wallet.StatusDisconnected, wallet.StatusConnecting, wallet.StatusConnected,
	} {
		t.Run(status.String(), func(t *testing.T) {
			doc := render(t, Navbar(status, stubButton))

			assert.Equal(t, "Logo", doc.Find("div.logo").Text())
			assert.Equal(t, 1, doc.Find(`nav.navbar [data-testid="connect-stub"]`).Length())

			form := doc.Find("nav.navbar form[data-navbar-search]")
			require.Equal(t, 1, form.Length())
			assert.Equal(t, SearchPath, form.AttrOr("action", ""))
			assert.Equal(t, "post", form.AttrOr("method", ""))

			input := form.Find("input.searchBar")
			require.Equal(t, 1, input.Length())
			assert.Equal(t, "text", input.AttrOr("type", ""))
			assert.Equal(t, "Search...", input.AttrOr("placeholder", ""))
		})
	}
}

func TestNavMenu_RendersStandaloneFragment(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NavMenu(wallet.StatusConnected).Render(&b))

	html := b.String()
	assert.True(t, strings.HasPrefix(html, `<ul id="navbar-menu"`))
	assert.NotContains(t, html, "<nav")
	assert.Contains(t, html, "Dashboard")
}

func TestHome_RendersSingleNavbar(t *testing.T) {
	doc := render(t, Home(PageConfig{Title: "Test", Description: "desc"}, Navbar(wallet.StatusUnknown, stubButton)))

	assert.Equal(t, "Test", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("main.container").Length())
	assert.Equal(t, 1, doc.Find("main.container > nav.navbar").Length())
	assert.Equal(t, 1, doc.Find("nav").Length())
	assert.Equal(t, 1, doc.Find(`script[src="/static/js/navbar.js"]`).Length())
}

func TestLayout_WalletScript(t *testing.T) {
	doc := render(t, Layout(PageConfig{WalletScriptURL: "https://cdn.example.com/wallet.js"}))
	assert.Equal(t, 1, doc.Find(`script[src="https://cdn.example.com/wallet.js"]`).Length())
	assert.Equal(t, "Landing", doc.Find("title").Text())

	doc = render(t, Layout(PageConfig{}))
	assert.Equal(t, 1, doc.Find("script").Length())
	assert.Equal(t, 0, doc.Find(`meta[name="description"]`).Length())
}
