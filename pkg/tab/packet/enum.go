package packet

import (
	"fmt"
	"strings"
)

// enums are ordinals with a fixed name table used for text encoding

func enumString[E ~int](names []string, e E) string {
	if int(e) >= 0 && int(e) < len(names) {
		return names[e]
	}
	return fmt.Sprintf("unknown(%d)", int(e))
}

func enumMarshal[E ~int](names []string, e E) ([]byte, error) {
	if int(e) < 0 || int(e) >= len(names) {
		return nil, fmt.Errorf("invalid ordinal %d", int(e))
	}
	return []byte(names[e]), nil
}

func enumUnmarshal[E ~int](names []string, text []byte, e *E, what string) error {
	s := string(text)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			*e = E(i)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q, must be one of %s", what, s, strings.Join(names, ", "))
}

// valid reports whether the ordinal has a name.
func valid[E ~int](names []string, e E) bool {
	return int(e) >= 0 && int(e) < len(names)
}
