// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

import (
	"regexp"
	"strings"
	"unicode"
)

// space matches Unicode whitespace (no-break and other Z spaces, the byte
// order mark), not only the ASCII set RE2 uses for \s.
const space = `[\s\v\p{Z}\x{FEFF}]`

// producerSeparator matches, in order of precedence, ", and ", a bare comma,
// and a standalone "and" between names.
var producerSeparator = regexp.MustCompile(`(?i)` +
	space + `*,` + space + `*and` + space + `+|` +
	space + `*,` + space + `*|` +
	space + `+and` + space + `+`)

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || r == '\ufeff'
}

// ParseProducers splits a credits string into trimmed, non-empty producer names.
//
//	ParseProducers("Uri Fruchtan, Mark L. Rosen and Barnaby Thompson")
//	// ["Uri Fruchtan", "Mark L. Rosen", "Barnaby Thompson"]
//
// An empty or blank string yields an empty, non-nil slice.
func ParseProducers(raw string) []string {
	names := []string{}
	if strings.TrimFunc(raw, isSpace) == "" {
		return names
	}

	for _, part := range producerSeparator.Split(raw, -1) {
		if name := strings.TrimFunc(part, isSpace); name != "" {
			names = append(names, name)
		}
	}
	return names
}
