package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/umbcdata/degree-offerings/internal/offering"
)

func testSummary() *Summary {
	return &Summary{
		WrittenAt: time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		Path:      "data/2026-3-7.json",
		Programs:  2,
		Stats:     offering.Stats{RowsSeen: 4, RowsSkipped: 1, TitlesMerged: 1},
		Table: offering.Table{
			"Physics": {
				offering.Bachelors:   offering.Label("Physics"),
				offering.Masters:     offering.NotOffered,
				offering.Doctorate:   offering.Label("Atmospheric Physics"),
				offering.Certificate: offering.NotOffered,
				offering.Minor:       offering.Offered(),
			},
			"art": {
				offering.Bachelors:   offering.NotOffered,
				offering.Masters:     offering.NotOffered,
				offering.Doctorate:   offering.NotOffered,
				offering.Certificate: offering.NotOffered,
				offering.Minor:       offering.NotOffered,
			},
		},
	}
}

func TestWriteSummary_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, testSummary(), FormatText, false); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	want := "Wrote 2 programs to data/2026-3-7.json\n"
	if buf.String() != want {
		t.Errorf("WriteSummary() = %q, want %q", buf.String(), want)
	}
}

func TestWriteSummary_TextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, testSummary(), FormatText, true); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Rows: 4 read, 1 skipped, 1 merged into earlier programs",
		"  art: none\n",
		"  Physics: Bachelor's (Physics), Doctorate (Atmospheric Physics), Minor\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "art:") > strings.Index(out, "Physics:") {
		t.Errorf("programs are not sorted case-insensitively:\n%s", out)
	}
}

func TestWriteSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, testSummary(), FormatJSON, false); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	checks := map[string]interface{}{
		"path":          "data/2026-3-7.json",
		"programs":      float64(2),
		"rows_seen":     float64(4),
		"rows_skipped":  float64(1),
		"titles_merged": float64(1),
		"written_at":    "2026-03-07T00:00:00Z",
	}
	for key, want := range checks {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
	if _, ok := got["Table"]; ok {
		t.Error("table should not be part of the summary")
	}
}

func TestWriteSummary_UnknownFormat(t *testing.T) {
	if err := WriteSummary(&bytes.Buffer{}, testSummary(), OutputFormat("yaml"), false); err == nil {
		t.Error("WriteSummary() expected error, got nil")
	}
}
