package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Format trims leading and trailing white space and returns the NFC form of
// what is left, so a decomposed "e\u0301" formats as "\u00e9".
func Format(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
