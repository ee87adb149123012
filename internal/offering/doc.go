// Package offering models the degree and certificate offerings of academic programs.
//
// A program's offerings are reconciled from the rows of the UMBC degree programs
// table. The table is irregular: a program can span several rows, cells can be
// blank, and certificate cells can list several variants on separate lines. The
// Fold and Reconcile functions merge those rows into one Record per program title
// without any dependency on the HTML document itself.
package offering
