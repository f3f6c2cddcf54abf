package typeinfo

import "regexp"

var validPropName = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$:\-]*$`)

// IsValidPropName reports whether name can be passed as a component prop.
func IsValidPropName(name string) bool {
	return validPropName.MatchString(name)
}
