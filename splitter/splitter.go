// Copyright 2019 Michael J. Fromberger. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package splitter implements delimiter- and pattern-based segmentation of
// a byte buffer: every occurrence of a delimiter byte or a compiled pattern
// becomes (or borders) a segment boundary, under a configurable attachment
// policy, with short segments optionally merged into their neighbors.
//
// Unlike the chunker, a Split is a single-shot transformation: it takes a
// whole buffer and returns the whole boundary list in one call. There is no
// cursor, and calling it twice on the same input is guaranteed to produce
// the same result.
package splitter

import (
	"github.com/chonkie-inc/chunk/pattern"
)

// IncludeDelim controls whether a matched delimiter or pattern is attached
// to the segment that precedes it, the one that follows it, or neither.
type IncludeDelim int

const (
	// None discards the matched bytes from both neighboring segments.
	None IncludeDelim = iota
	// Prev attaches the match to the segment that precedes it.
	Prev
	// Next attaches the match to the segment that follows it.
	Next
)

// A Config contains the settings for Split. A nil *Config splits on
// pattern.DefaultDelimiters with IncludeDelim = Prev and no minimum length.
type Config struct {
	// Delimiters is the set of single bytes to split on. Ignored if Pattern
	// is non-empty.
	Delimiters []byte

	// Pattern is a single multi-byte split point. Takes precedence over
	// Delimiters when non-empty.
	Pattern []byte

	// Include controls delimiter/pattern attachment. Zero value is None;
	// callers that want the package default (Prev) should pass a nil *Config
	// or set Include explicitly.
	Include IncludeDelim

	// MinChars is the minimum byte length of an emitted segment before the
	// minimum-length merge rule folds it into a neighbor. Zero disables
	// merging.
	MinChars int
}

func (c *Config) delimiters() []byte {
	if c == nil || (len(c.Delimiters) == 0 && len(c.Pattern) == 0) {
		return pattern.DefaultDelimiters
	}
	return c.Delimiters
}

func (c *Config) minChars() int {
	if c == nil {
		return 0
	}
	return c.MinChars
}

// Split partitions buf into segment offsets according to c. A nil *Config
// splits on the default delimiter set with Prev attachment and no merging.
func Split(buf []byte, c *Config) [][2]int {
	inc := c.include()
	matches := findMatches(buf, c)
	bounds := boundariesFor(matches, inc)
	segs := segmentsFrom(bounds, len(buf), inc)
	return mergeShort(segs, c.minChars())
}

// SplitString is Split for a string argument.
func SplitString(text string, c *Config) [][2]int {
	return Split([]byte(text), c)
}

func (c *Config) include() IncludeDelim {
	if c == nil {
		return Prev
	}
	return c.Include
}

// match is a single delimiter or pattern occurrence: a position and length,
// mirroring pattern.Match so the single-byte and multi-byte cases share the
// rest of the algorithm.
type match struct {
	pos, len int
}

// findMatches scans buf left to right and returns every delimiter or
// pattern occurrence, non-overlapping, in order. A configured Pattern takes
// precedence over Delimiters, matching the chunker's precedence rule.
func findMatches(buf []byte, c *Config) []match {
	if c != nil && len(c.Pattern) > 0 {
		a, err := pattern.Compile([][]byte{c.Pattern})
		if err != nil {
			return nil
		}
		return fromPatternMatches(a.Find(buf))
	}
	d := pattern.NewDelimiters(c.delimiters())
	var out []match
	for i, b := range buf {
		if d.Contains(b) {
			out = append(out, match{pos: i, len: 1})
		}
	}
	return out
}

func fromPatternMatches(ms []pattern.Match) []match {
	out := make([]match, len(ms))
	for i, m := range ms {
		out[i] = match{pos: m.Pos, len: m.Len}
	}
	return out
}

// boundariesFor translates matches into segment boundaries per the
// attachment policy (spec §4.2 step 2).
func boundariesFor(matches []match, inc IncludeDelim) []int {
	var out []int
	for _, m := range matches {
		switch inc {
		case Prev:
			out = append(out, m.pos+m.len)
		case Next:
			out = append(out, m.pos)
		case None:
			out = append(out, m.pos, m.pos+m.len)
		}
	}
	return out
}

// segmentsFrom prepends 0 and appends n to bounds, forms segments from
// consecutive boundary pairs, and drops zero-length segments.
//
// Under None, boundariesFor appends two boundary entries per match (the
// match's start and end), so every other interval in the resulting list is
// the matched bytes themselves rather than a segment: full alternates
// content, match, content, match, ..., starting with content, because each
// match contributes exactly one consecutive pair of boundaries in order.
// Those odd-indexed match intervals are discarded here — per spec §3, under
// None the matched bytes belong to neither neighboring segment.
func segmentsFrom(bounds []int, n int, inc IncludeDelim) [][2]int {
	full := make([]int, 0, len(bounds)+2)
	full = append(full, 0)
	full = append(full, bounds...)
	full = append(full, n)

	segs := make([][2]int, 0, len(full)-1)
	for i := 0; i+1 < len(full); i++ {
		if inc == None && i%2 == 1 {
			continue
		}
		start, end := full[i], full[i+1]
		if start < end {
			segs = append(segs, [2]int{start, end})
		}
	}
	return segs
}

// mergeShort implements the minimum-length merge rule (spec §4.2 step 4):
// walk left to right, absorbing the next segment into the accumulator
// whenever the accumulator is under minChars; if the final accumulator is
// still short, merge it backward into its predecessor.
func mergeShort(segs [][2]int, minChars int) [][2]int {
	if minChars <= 0 || len(segs) <= 1 {
		return segs
	}

	var out [][2]int
	acc := segs[0]
	for _, s := range segs[1:] {
		if acc[1]-acc[0] < minChars {
			acc = [2]int{acc[0], s[1]}
			continue
		}
		out = append(out, acc)
		acc = s
	}

	if acc[1]-acc[0] < minChars && len(out) > 0 {
		last := out[len(out)-1]
		out[len(out)-1] = [2]int{last[0], acc[1]}
	} else {
		out = append(out, acc)
	}
	return out
}
