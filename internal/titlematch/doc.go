// Package titlematch suggests catalog titles that resemble a misspelled or
// partial lookup.
//
// Titles are reduced to weighted character-trigram vectors. Trigram weights
// are scaled by inverse document frequency across the indexed titles so that
// common fragments ("the", "ing") count less than distinctive ones. Lookups
// rank titles by cosine similarity, with substring hits always ranked first.
package titlematch
