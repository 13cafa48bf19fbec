package utils

import "strconv"

// ParseInt converts a query parameter to a non-negative int, falling back
// to defaultValue when the input is empty, malformed or negative.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}

// ParseID converts a path parameter to an int64 id. Ids are positive and
// datastore-assigned, so anything else is a lookup miss.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
