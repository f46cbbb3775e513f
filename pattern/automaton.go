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

package pattern

import "errors"

// ErrNoPatterns is returned by Compile when the supplied pattern set is
// empty.
var ErrNoPatterns = errors.New("pattern: empty pattern set")

// ErrEmptyPattern is returned by Compile when one of the supplied patterns
// has zero length.
var ErrEmptyPattern = errors.New("pattern: empty pattern")

// A Match reports a single pattern occurrence.
type Match struct {
	Pos int // byte offset of the match
	Len int // length in bytes of the matched pattern
}

// End returns the offset just past the match.
func (m Match) End() int { return m.Pos + m.Len }

// An Automaton is a compiled multi-pattern matcher. It reports occurrences
// of any of its patterns in left-to-right order: when two patterns match at
// the same starting position, the longer one wins (leftmost-longest); once
// a match is reported, scanning resumes just past it, so matches never
// overlap.
//
// An Automaton is stateless after construction and may be shared read-only
// across goroutines; each call to Find starts a fresh scan.
//
// Patterns are compiled into a byte trie, in the spirit of the
// Aho-Corasick construction (https://dl.acm.org/doi/10.1145/360825.360855),
// sized down for the small pattern sets this package expects — a handful of
// delimiters or metaspace markers, not a dictionary — so the trie is walked
// directly from each candidate start rather than through failure links.
type Automaton struct {
	// single holds the one pattern when the set contains exactly one,
	// letting Find skip the trie walk entirely.
	single []byte

	nodes []node // nodes[0] is the root
}

type node struct {
	next  map[byte]int // child transitions
	match int          // length of the pattern ending here, or 0 if none
}

// Compile builds an Automaton from patterns. Patterns may repeat; the
// repeats match identically and do not change the result. Compile returns
// ErrNoPatterns if patterns is empty, or ErrEmptyPattern if any pattern has
// zero length.
func Compile(patterns [][]byte) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, ErrEmptyPattern
		}
	}
	if len(patterns) == 1 {
		return &Automaton{single: patterns[0]}, nil
	}

	a := &Automaton{nodes: []node{{next: map[byte]int{}}}}
	for _, p := range patterns {
		a.insert(p)
	}
	return a, nil
}

// insert adds pattern p to the trie rooted at node 0.
func (a *Automaton) insert(p []byte) {
	cur := 0
	for _, b := range p {
		nxt, ok := a.nodes[cur].next[b]
		if !ok {
			a.nodes = append(a.nodes, node{next: map[byte]int{}})
			nxt = len(a.nodes) - 1
			a.nodes[cur].next[b] = nxt
		}
		cur = nxt
	}
	if len(p) > a.nodes[cur].match {
		a.nodes[cur].match = len(p)
	}
}

// Find scans buf from the start and returns all pattern occurrences in
// left-to-right, leftmost-longest, non-overlapping order.
func (a *Automaton) Find(buf []byte) []Match {
	var out []Match
	for pos := 0; pos <= len(buf); {
		m, ok := a.findAt(buf, pos)
		if !ok {
			break
		}
		out = append(out, m)
		pos = m.End()
	}
	return out
}

// findAt returns the leftmost match at or after pos, or false if none
// remains in buf.
func (a *Automaton) findAt(buf []byte, pos int) (Match, bool) {
	if a.single != nil {
		if i := indexFrom(buf, a.single, pos); i >= 0 {
			return Match{Pos: i, Len: len(a.single)}, true
		}
		return Match{}, false
	}

	for start := pos; start < len(buf); start++ {
		cur := 0
		best := 0
		for i := start; i < len(buf); i++ {
			nxt, ok := a.nodes[cur].next[buf[i]]
			if !ok {
				break
			}
			cur = nxt
			if a.nodes[cur].match > best {
				best = a.nodes[cur].match
			}
		}
		if best > 0 {
			return Match{Pos: start, Len: best}, true
		}
	}
	return Match{}, false
}

// indexFrom finds the first occurrence of pat in buf at or after pos, or -1.
func indexFrom(buf, pat []byte, pos int) int {
	if pos >= len(buf) {
		return -1
	}
	n, m := len(buf), len(pat)
	for i := pos; i+m <= n; i++ {
		j := 0
		for j < m && buf[i+j] == pat[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}
