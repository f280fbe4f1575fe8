package web

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

func newComparisonValidator(valueInClosure int64, compareFn func(argValue, closedValue int64) bool) ParamValidator {
	return func(argValue int64) bool {
		return compareFn(argValue, valueInClosure)
	}
}

// gte returns a ParamValidator that checks if the argument is greater than or equal to the value captured in the closure.
func gte(valToCompareAgainst int64) ParamValidator {
	return newComparisonValidator(valToCompareAgainst, func(argValue, closedValue int64) bool {
		return argValue >= closedValue
	})
}

// PathInt64Gte reads the path parameter key as a base-10 integer that must be >= min.
// It returns a 400 *Error otherwise.
func PathInt64Gte(r *http.Request, key string, min int64) (int64, error) {
	return parsePathInt64(r, key, gte(min))
}

func parsePathInt64(r *http.Request, key string, pValidator ParamValidator) (int64, error) {
	value := r.PathValue(key)
	if value == "" {
		return 0, BadRequest(fmt.Sprintf("%s path parameter is required", key))
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil || !pValidator(intValue) {
		return 0, &Error{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid %s: %s", key, value),
			Err:     err,
		}
	}
	return intValue, nil
}
