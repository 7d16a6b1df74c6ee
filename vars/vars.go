package vars

import "strings"

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}

func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
