// Package aggregate computes summary statistics over a catalog view.
//
// Frequency rankings sort by descending count and break ties by the order in
// which a key was first seen in the view, so identical input order always
// yields identical output. Calendar buckets (decade, year, month, quarter)
// are ordered by key instead. Statistics over an empty view are nil rather
// than zero so callers can tell "no data" from a real zero.
package aggregate
