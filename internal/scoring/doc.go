// Package scoring computes the deterministic 0-100 content score of a title
// and maps scores to quality tiers.
//
// A score is the sum of three components:
//   - age: 0.35 * max(0, 100 - 1.5*content_age), 0 when the age is unknown
//   - format fit: 40/30/20 depending on how well a movie's runtime or a
//     show's season count fits the preferred range, 0 when unknown
//   - rating: a fixed per-rating value, 15 for anything not in the table
//
// The sum is truncated to an integer and clamped to [0,100]. Missing inputs
// only zero their own component; scoring never fails.
package scoring
