package common

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first non-empty string, or "" when all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
