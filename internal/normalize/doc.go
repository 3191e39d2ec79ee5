// Package normalize maps raw tabular rows with arbitrary column names onto the
// canonical catalog schema.
//
// Column names are canonicalized (trimmed, lowercased, spaces replaced by
// underscores) and resolved against an ordered alias table; the first alias
// present in a row wins. Every canonical field is always present in the
// output Record, nil when the source did not supply it. Content kinds are
// folded through a synonym table into the canonical catalog kinds.
package normalize
