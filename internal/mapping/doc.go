// Package mapping routes an input value to the single rule registered for its key
// and runs it.
//
// The registry is an explicit table filled by the caller: every supported input
// kind is wired with one Register call, and Map never inspects types at runtime
// beyond the key function it was built with.
package mapping
