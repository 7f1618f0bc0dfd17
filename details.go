package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Structural positions of the title and the time table in the rendered
// Next.js detail page.
const (
	gameTitleSelector = "#__next > div > main > div:nth-child(1) > div > div > div > div[class*='GameHeader_profile_header']"
	timeTableSelector = "#__next > div > main > div:nth-child(2) > div > div[class*='content_75_static'] > div.in.scrollable.scroll_blue.shadow_box.back_primary > table[class*='GameTimeTable_game_main_table']"
)

// Marker Next.js leaves in place of empty interpolations; it shows up inside
// the title element's inner HTML.
const emptyInterpolation = "<!-- -->"

// extractDetails turns the rendered detail page for id into a GameRecord.
// A page without a recognizable title or time table fails outright; a table
// with no recognizable rows yields a record with no statistics. When a
// category appears in more than one row, the last row wins.
func extractDetails(id int, html string) (*GameRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	titleSel := doc.Find(gameTitleSelector)
	if titleSel.Length() == 0 {
		return nil, fmt.Errorf("%w: no title element on detail page %d", ErrMalformedResponse, id)
	}
	titleHTML, err := titleSel.First().Html()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	title := strings.TrimSpace(strings.ReplaceAll(titleHTML, emptyInterpolation, ""))
	if title == "" {
		return nil, fmt.Errorf("%w: empty title on detail page %d", ErrMalformedResponse, id)
	}

	table := doc.Find(timeTableSelector)
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no time table on detail page %d", ErrMalformedResponse, id)
	}

	record := &GameRecord{ID: id, Title: title}
	var rowErr error
	table.First().Find("tbody > tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		category, styles, err := parseTimeRow(row)
		if err != nil {
			rowErr = err
			return false
		}
		if category != CategoryUnknown {
			record.setCategory(category, styles)
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return record, nil
}
