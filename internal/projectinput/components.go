package projectinput

import "slices"

func isInvalid(invalid []string, field string) bool {
	return slices.Contains(invalid, field)
}
