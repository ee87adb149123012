package offering

// Stats describes what happened during a reconciliation pass
type Stats struct {
	RowsSeen     int `json:"rows_seen"`
	RowsSkipped  int `json:"rows_skipped"`
	TitlesMerged int `json:"titles_merged"`
}

// Fold computes a program's Record from the previous Record for the same title
// and the data cells of its next row. A nil prior means the title has not been
// seen yet.
//
// Non-empty cells override the prior value, empty cells carry it forward, so a
// repeated row never blanks out an offering. Every kind in cols is present in
// the result, defaulting to NotOffered when no row has filled it. The result
// is a new Record and prior is left untouched. Cells past the end of cols are
// ignored.
func Fold(prior Record, cells []string, cols Columns) Record {
	next := make(Record, len(cols))
	for _, kind := range cols {
		next[kind] = NotOffered
	}
	for kind, v := range prior {
		next[kind] = v
	}

	for i, text := range cells {
		if i >= len(cols) {
			break
		}
		kind := cols[i]

		v := prior[kind]
		if text != "" {
			v = Label(text)
		}
		next[kind] = resolve(kind, v)
	}

	return next
}

// resolve applies the per-kind value rules to a freshly folded value
func resolve(kind Kind, v Value) Value {
	if !v.IsLabel() {
		return v
	}

	// A cell that just says "Minor" has no sub-type worth keeping
	if v.label == string(Minor) {
		return Offered()
	}

	if kind == Certificate {
		return Label(NormalizeCertificate(v.label))
	}

	return v
}

// Reconcile folds table rows, header excluded, into a Table
func Reconcile(rows []Row, cols Columns) Table {
	table, _ := ReconcileWithStats(rows, cols)
	return table
}

// ReconcileWithStats is Reconcile that also reports row counts
func ReconcileWithStats(rows []Row, cols Columns) (Table, Stats) {
	table := make(Table)
	stats := Stats{RowsSeen: len(rows)}

	for _, row := range rows {
		if row.Empty() {
			stats.RowsSkipped++
			continue
		}

		prior, seen := table[row.Title]
		if seen {
			stats.TitlesMerged++
		}
		table[row.Title] = Fold(prior, row.Cells, cols)
	}

	return table, stats
}
