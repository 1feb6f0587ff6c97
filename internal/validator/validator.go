package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PathRX matches an absolute URL path prefix without a trailing slash, or
// the empty string for no prefix.
var PathRX = regexp.MustCompile(`^(/[A-Za-z0-9._~!$&'()*+,;=:@%-]+)*$`)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: map[string]string{}}
}

func (v *Validator) CheckError(ok bool, key, message string) {
	if !ok {
		v.AddFieldError(key, message)
	}
}

func (v *Validator) IsValid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddFieldError(key, message string) {
	_, exists := v.Errors[key]
	if !exists {
		v.Errors[key] = message
	}
}

// Err folds the collected errors into one error, keys sorted, or nil.
func (v *Validator) Err() error {
	if v.IsValid() {
		return nil
	}

	keys := make([]string, 0, len(v.Errors))
	for key := range v.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", key, v.Errors[key]))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(parts, "; "))
}

func InRange(val, min, max int) bool {
	return val >= min && val <= max
}

func PermittedValue[T comparable](val T, permittedValues ...T) bool {
	for _, permitted := range permittedValues {
		if val == permitted {
			return true
		}
	}

	return false
}

// AllPermitted reports whether every element of vals is permitted.
func AllPermitted[T comparable](vals []T, permittedValues ...T) bool {
	for _, val := range vals {
		if !PermittedValue(val, permittedValues...) {
			return false
		}
	}

	return true
}

func Matches(val string, rx *regexp.Regexp) bool {
	return rx.MatchString(val)
}
