// Package storage provides JSON persistence for degree offerings snapshots.
//
// Each run writes one snapshot file named after the run date in YYYY-M-D form
// (for example 2026-3-7.json) inside the data directory. Snapshots are write-once:
// a second run on the same day overwrites the file, and nothing reads earlier
// snapshots back. The data directory must already exist.
package storage
