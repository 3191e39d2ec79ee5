// Package query evaluates declarative filters against a catalog.
//
// A FilterSpec has independent optional dimensions. Empty dimensions impose
// no constraint; active ones combine with AND, and the genre and country
// dimensions match when a title shares any selected value. Filtering is a
// stable linear scan: the resulting view keeps catalog order.
//
// Filter never fails. Values outside a dimension's domain, such as an unknown
// tier name or an inverted year range, match nothing. Validate is available
// to callers that want to reject such specs before running them.
package query
