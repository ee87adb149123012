// Package scraper provides HTTP fetching and HTML table extraction for the UMBC
// degree programs page.
//
// The scraper fetches the public degrees page, locates the programs table and
// turns each of its rows into an offering.Row: the program title taken from the
// row's header cell and the text of its data cells in column order. Rows are
// returned as plain values so the reconciliation logic never touches the DOM.
package scraper
