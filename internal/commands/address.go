package commands

import "strings"

// Segments splits a dot-delimited uri for callers that route on it.
func Segments(uri string) []string {
	if uri == "" {
		return nil
	}
	return strings.Split(uri, ".")
}
