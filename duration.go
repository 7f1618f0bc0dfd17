package main

import (
	"strconv"
	"strings"
)

var fractionReplacer = strings.NewReplacer("½", ".5", "¼", ".25", "¾", ".75")

// ParseDuration converts one cell of the time table into seconds. The site
// writes durations in two encodings depending on category and site revision:
// a decimal hour figure ("83 Hours", "59½ Hours") and a compact form
// ("26h 21m", "4h", "45m"). Empty cells and the "-"/"--" placeholders mean
// the measure is not reported, which comes back as nil.
//
// An accumulated total of zero is also reported as nil, so a genuinely
// zero-second time is indistinguishable from a missing one. That matches the
// observed site behavior and is intentional; no other code treats 0 as a
// missing marker.
func ParseDuration(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" || text == "--" {
		return nil
	}

	if strings.Contains(text, "Hour") {
		first := strings.Fields(text)[0]
		hours, err := strconv.ParseFloat(fractionReplacer.Replace(first), 64)
		if err != nil {
			return nil
		}
		total := hours * 3600
		return &total
	}

	total := 0.0
	for _, token := range strings.Fields(text) {
		switch {
		case strings.HasSuffix(token, "h"):
			value, err := strconv.ParseFloat(strings.TrimSuffix(token, "h"), 64)
			if err == nil {
				total += value * 3600
			}
		case strings.HasSuffix(token, "m"):
			value, err := strconv.ParseFloat(strings.TrimSuffix(token, "m"), 64)
			if err == nil {
				total += value * 60
			}
		}
	}
	if total == 0 {
		return nil
	}
	return &total
}
