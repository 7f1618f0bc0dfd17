package main

import "errors"

var (
	ErrNotFound          = errors.New("no search result found")
	ErrMalformedResponse = errors.New("unexpected page structure")
)

// StatisticSet holds the four completion-time measures the site reports for
// one play style, in seconds. A nil field means the site shows no figure for
// that measure; one measure being absent says nothing about the others.
type StatisticSet struct {
	Average *float64 `json:"average,omitempty"`
	Median  *float64 `json:"median,omitempty"`
	Rushed  *float64 `json:"rushed,omitempty"`
	Leisure *float64 `json:"leisure,omitempty"`
}

// GameRecord is the result of one lookup. Only the categories the detail
// page actually rendered are populated; a multiplayer-only title may carry
// nothing but CoOp and Versus, and a record with zero populated categories
// is legal.
type GameRecord struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	MainStory     *StatisticSet `json:"main_story,omitempty"`
	MainExtra     *StatisticSet `json:"main_extra,omitempty"`
	Completionist *StatisticSet `json:"completionist,omitempty"`
	AllStyles     *StatisticSet `json:"all_styles,omitempty"`
	CoOp          *StatisticSet `json:"co_op,omitempty"`
	Versus        *StatisticSet `json:"versus,omitempty"`
}

func (g *GameRecord) setCategory(category Category, styles *StatisticSet) {
	switch category {
	case CategoryMainStory:
		g.MainStory = styles
	case CategoryMainExtra:
		g.MainExtra = styles
	case CategoryCompletionist:
		g.Completionist = styles
	case CategoryAllStyles:
		g.AllStyles = styles
	case CategoryCoOp:
		g.CoOp = styles
	case CategoryVersus:
		g.Versus = styles
	}
}
