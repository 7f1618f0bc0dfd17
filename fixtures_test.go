package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// fakeRenderer serves canned HTML keyed by URL, standing in for the Chrome
// renderer in deterministic tests.
type fakeRenderer struct {
	pages map[string]string
	err   error
}

func (f *fakeRenderer) RenderPage(ctx context.Context, pageURL, waitFor string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	html, ok := f.pages[pageURL]
	if !ok {
		return "", fmt.Errorf("render %s: no such page", pageURL)
	}
	return html, nil
}

func searchURL(name string) string {
	return baseURL + "?q=" + url.QueryEscape(name)
}

func detailURL(id int) string {
	return fmt.Sprintf("%sgame/%d", baseURL, id)
}

// searchPage renders a minimal search results page whose first result card
// links to href. An empty href renders a page with no results.
func searchPage(href string) string {
	card := ""
	if href != "" {
		card = fmt.Sprintf(
			`<li><div><div class="GameCard_search_list_image__43Jkr"><a href=%q><img/></a></div></div></li>`,
			href,
		)
	}
	return fmt.Sprintf(
		`<html><body><div id="search-results-header"><ul>%s</ul></div></body></html>`,
		card,
	)
}

// detailPage renders a minimal detail page with the structural skeleton the
// extraction selectors expect: the title block as the first child of main,
// the time table as the second.
func detailPage(titleHTML, tableRows string) string {
	return fmt.Sprintf(`<html><body><div id="__next"><div><main>
<div><div><div><div>
  <div class="GameHeader_profile_header__q_PID shadow_text">%s</div>
</div></div></div></div>
<div><div><div class="content_75_static">
  <div class="in scrollable scroll_blue shadow_box back_primary">
    <table class="GameTimeTable_game_main_table__7uN3H"><tbody>%s</tbody></table>
  </div>
</div></div></div>
</main></div></div></body></html>`, titleHTML, tableRows)
}

// detailPageWithoutTable renders a detail page whose second content block
// holds no time table.
func detailPageWithoutTable(titleHTML string) string {
	return fmt.Sprintf(`<html><body><div id="__next"><div><main>
<div><div><div><div>
  <div class="GameHeader_profile_header__q_PID shadow_text">%s</div>
</div></div></div></div>
<div><div><div class="content_75_static"><p>no statistics yet</p></div></div></div>
</main></div></div></body></html>`, titleHTML)
}

// timeRow renders a table row with a label cell, a polled-count cell, and
// the given duration cells.
func timeRow(label string, durations ...string) string {
	var b strings.Builder
	b.WriteString("<tr><td>" + label + "</td><td>128</td>")
	for _, cell := range durations {
		b.WriteString("<td>" + cell + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}
