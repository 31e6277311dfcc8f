package common

// First returns the first element of s and true, or the zero value and false if s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// NonNil returns a new slice holding the non-nil pointers of s in order.
func NonNil[S ~[]*E, E any](s S) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}
