// Package recfile implements a minimal single-file relational store: a
// fixed-capacity table catalog followed by fixed-width rows packed into
// fixed-size pages, threaded together with singly-linked page chains and a
// singly-linked free-page list, all within one file.
//
// # Basic usage
//
//	db, err := recfile.Open("people.recfile")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = db.CreateTable("people", []recfile.ColumnDesc{
//	    {Name: "id", Type: recfile.TypeInt},
//	    {Name: "name", Type: recfile.TypeString},
//	})
//
//	err = db.Insert("people", []recfile.Cell{
//	    recfile.IntCell(1),
//	    recfile.StringCell("ada"),
//	})
//
//	_, rows, err := db.Select("people", []string{"*"}, recfile.AlwaysTrue)
//
// # Scope
//
// recfile has no SQL parser and no query planner: Select, Update, and
// Delete take an opaque Predicate callback, and Update takes a plain
// column-to-value assignment map. Building those from a query language is
// left to a caller-supplied layer — recfile only knows how to store and
// scan rows.
//
// Every exported operation opens the backing file, takes an advisory file
// lock appropriate to whether it mutates the file, does its work, and
// closes the file again — there is no long-lived handle between calls, so
// a *DB is safe to share across goroutines and even across processes on
// platforms that support advisory locking.
package recfile
