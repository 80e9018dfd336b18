// Package store owns the patient visit table.
//
// A Store binds one records source: a comma-delimited file with a header
// row naming the columns in model.Columns order. Open parses the whole
// source into memory; every mutation writes the table back before
// returning (write-through), using a temp-file rename so the source is
// never half-written. A failed write rolls the in-memory change back.
//
// The store assumes a single process and a single active session; it
// provides no locking against a second writer.
package store
