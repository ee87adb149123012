package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/umbcdata/degree-offerings/internal/offering"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary describes a finished run
type Summary struct {
	WrittenAt time.Time `json:"written_at"`
	Path      string    `json:"path"`
	Programs  int       `json:"programs"`
	offering.Stats

	Table offering.Table `json:"-"`
}

// WriteSummary writes the run summary in the specified format
func WriteSummary(w io.Writer, summary *Summary, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, summary *Summary, verbose bool) error {
	fmt.Fprintf(w, "Wrote %d programs to %s\n", summary.Programs, summary.Path)

	if !verbose {
		return nil
	}

	fmt.Fprintf(w, "Rows: %d read, %d skipped, %d merged into earlier programs\n",
		summary.RowsSeen, summary.RowsSkipped, summary.TitlesMerged)

	for _, title := range sortedTitles(summary.Table) {
		fmt.Fprintf(w, "  %s: %s\n", title, describe(summary.Table[title]))
	}

	return nil
}

// describe lists the offered kinds of a record in column order
func describe(rec offering.Record) string {
	parts := make([]string, 0, len(rec))
	for _, kind := range orderedKinds(rec) {
		v := rec[kind]
		switch {
		case v.IsLabel() && v.Text() != "":
			parts = append(parts, fmt.Sprintf("%s (%s)", kind, v.Text()))
		case v.IsOffered():
			parts = append(parts, string(kind))
		}
	}

	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
