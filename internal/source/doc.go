// Package source reads the raw tabular dataset a catalog is built from.
//
// Two formats are supported: delimited text (CSV) and a table inside a SQLite
// database. Both readers return rows keyed by the source column names exactly
// as they appear in the dataset; schema mapping is left to the normalize
// package. Every read also yields a content fingerprint (xxhash of the file
// bytes) that the catalog cache uses to decide whether a rebuild is needed.
//
// Reads take a shared advisory lock on "<path>.lock" so cooperating writers
// holding the exclusive lock are never observed half-way through a rewrite.
// Lock failures are logged and the read proceeds unlocked.
//
// A missing dataset is reported as ErrNotFound and is never handled here.
package source
