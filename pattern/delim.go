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

// Package pattern implements the byte-scanning primitives shared by the
// chunker and splitter: single-byte delimiter membership and multi-byte
// pattern matching.
//
// Delimiters are looked up through a 256-entry membership table rather than
// a map, so a hit test costs one array load regardless of how many bytes
// are in the set. Patterns longer than one byte are matched by Automaton,
// which compiles the pattern set once and scans left to right with
// leftmost-longest, non-overlapping semantics.
package pattern

// DefaultDelimiters are the bytes the chunker and splitter use when the
// caller configures neither a delimiter set nor a pattern: newline, period,
// and question mark.
var DefaultDelimiters = []byte{'\n', '.', '?'}

// A Delimiters value is a compiled membership set over the 256 possible
// byte values. It is built once from a caller-supplied slice (typically via
// NewDelimiters) and is safe to share read-only across goroutines.
type Delimiters struct {
	table [256]bool
	set   Set
}

// NewDelimiters compiles bs into a Delimiters membership table. Duplicate
// bytes are permitted and collapse to a single membership entry. An empty bs
// yields a Delimiters that matches nothing.
func NewDelimiters(bs []byte) *Delimiters {
	d := &Delimiters{set: NewSet(bs...)}
	for _, b := range bs {
		d.table[b] = true
	}
	return d
}

// Contains reports whether b is a member of the delimiter set.
func (d *Delimiters) Contains(b byte) bool {
	if d == nil {
		return false
	}
	return d.table[b]
}

// Bytes returns the distinct delimiter bytes in the set, in ascending order.
func (d *Delimiters) Bytes() []byte {
	if d == nil {
		return nil
	}
	return Sorted(d.set)
}

// Empty reports whether the delimiter set has no members.
func (d *Delimiters) Empty() bool {
	return d == nil || d.set.Len() == 0
}
