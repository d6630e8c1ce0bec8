// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package natsort orders filenames the way people expect: embedded digit
// runs compare by numeric value, so "img2.png" sorts before "img10.png".
// Implements: prd002-ordering (R1-R4);
//
//	docs/ARCHITECTURE § Page Ordering.
package natsort

import (
	"sort"
	"strings"
)

// chunk is one token of a sort key: a digit run stored with leading zeros
// trimmed, or a text run stored lower-cased.
type chunk struct {
	text    string
	numeric bool
}

// key is the comparable form of one filename.
type key []chunk

// makeKey splits name into its maximal alternating digit and non-digit
// runs, in order. Trimming leading zeros up front makes "007" key equal
// to "7"; an all-zero run trims to the empty string, which compares as
// the value zero.
func makeKey(name string) key {
	var k key
	start := 0
	numeric := false

	flush := func(end int) {
		if end == start {
			return
		}
		run := name[start:end]
		if numeric {
			k = append(k, chunk{text: strings.TrimLeft(run, "0"), numeric: true})
		} else {
			k = append(k, chunk{text: strings.ToLower(run)})
		}
		start = end
	}

	for i := 0; i < len(name); i++ {
		isDigit := name[i] >= '0' && name[i] <= '9'
		if isDigit != numeric {
			flush(i)
			numeric = isDigit
		}
	}
	flush(len(name))
	return k
}

// compareChunks orders two tokens at the same position. A text token
// sorts before a numeric one, so the ordering stays total when names
// disagree on where their numbers sit.
func compareChunks(a, b chunk) int {
	if a.numeric != b.numeric {
		if a.numeric {
			return 1
		}
		return -1
	}
	if a.numeric {
		return compareDigits(a.text, b.text)
	}
	return strings.Compare(a.text, b.text)
}

// compareDigits orders two zero-trimmed digit runs by integer value
// without parsing, so runs of any length compare exactly: a longer run
// is a larger number, equal lengths fall back to byte order.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func compareKeys(a, b key) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareChunks(a[i], b[i]); c != 0 {
			return c
		}
	}
	// Equal up to the shorter key: fewer tokens sorts first.
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Compare reports the natural order of a and b: negative when a sorts
// first, positive when b does, zero when their keys are equal ("a007"
// and "a7" are equal-keyed). Any strings are valid input.
func Compare(a, b string) int {
	return compareKeys(makeKey(a), makeKey(b))
}

// Less reports whether a naturally sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// fileEntry pairs a name with its derived key so each name is tokenized
// once, not on every comparison.
type fileEntry struct {
	name string
	key  key
}

// Sorted returns names in natural order. The input slice is not
// modified; equal-keyed names keep their original relative order.
func Sorted(names []string) []string {
	entries := make([]fileEntry, len(names))
	for i, n := range names {
		entries[i] = fileEntry{name: n, key: makeKey(n)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return compareKeys(entries[i].key, entries[j].key) < 0
	})

	out := make([]string, len(names))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
