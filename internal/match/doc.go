// Package match ranks identifiers by edit distance so that unresolved references in
// export settings can be reported with "did you mean" suggestions.
package match
