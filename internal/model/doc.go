// Package model is the in-memory form of the ECSS-E-TM-10-25 requirements data that
// gets exported: specifications, their group trees, requirements and the typed
// parameter values attached to each of them.
//
// Parameter types form a closed union. Every variant reports its ParameterKind and
// consumers switch on it exhaustively; there is no other way to add a variant.
package model
