package cli

import (
	"sort"
	"strings"

	"github.com/umbcdata/degree-offerings/internal/offering"
)

// sortedTitles returns the program titles of a table in case-insensitive order
func sortedTitles(table offering.Table) []string {
	titles := make([]string, 0, len(table))
	for title := range table {
		titles = append(titles, title)
	}

	sort.Slice(titles, func(i, j int) bool {
		a, b := strings.ToLower(titles[i]), strings.ToLower(titles[j])
		if a != b {
			return a < b
		}
		// Titles differing only in case keep a stable order
		return titles[i] < titles[j]
	})

	return titles
}

// orderedKinds returns the kinds of a record in the default column order,
// followed by any other kinds sorted by name
func orderedKinds(rec offering.Record) []offering.Kind {
	kinds := make([]offering.Kind, 0, len(rec))
	known := make(map[offering.Kind]bool, len(offering.DefaultColumns))

	for _, kind := range offering.DefaultColumns {
		known[kind] = true
		if _, ok := rec[kind]; ok {
			kinds = append(kinds, kind)
		}
	}

	var extra []offering.Kind
	for kind := range rec {
		if !known[kind] {
			extra = append(extra, kind)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(kinds, extra...)
}
