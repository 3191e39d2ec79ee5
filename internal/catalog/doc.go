// Package catalog defines the normalized title record and the immutable
// collections built from it.
//
// A Catalog is produced once per dataset load by the pipeline package and is
// never modified afterwards. Views are ordered subsets of a Catalog returned
// by filter queries. Both types are safe for concurrent readers because no
// writer exists after construction.
package catalog
