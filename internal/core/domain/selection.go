package domain

// IsValid reports whether value is one of the options returned by the store.
func IsValid[T comparable](options []T, value T) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
