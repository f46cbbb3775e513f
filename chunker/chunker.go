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

// Package chunker implements size-bounded chunking of an in-memory byte
// buffer: the Chunker emits consecutive chunks of approximately a target
// size, preferring to cut at a delimiter or pattern match rather than in
// the middle of one.
//
// Unlike a content-defined (rolling hash) splitter, the cut point is chosen
// by a bounded backward search from the target size, with an optional
// forward fallback when no delimiter falls inside the window. This keeps
// chunk boundaries aligned to natural breaks (sentence ends, paragraph
// breaks, whitespace runs) whenever one is nearby.
package chunker

import (
	"github.com/chonkie-inc/chunk/pattern"
)

// DefaultTargetSize is the target chunk size used when a Config does not
// set Size.
const DefaultTargetSize = 4096

// A Config contains the settings to construct a Chunker. A nil *Config is
// ready for use with default sizes and the default delimiter set.
type Config struct {
	// Size is the target chunk size, in bytes. The chunker attempts to
	// produce chunks of approximately this length. If <= 0, DefaultTargetSize
	// is used.
	Size int

	// Delimiters is the set of single bytes that are preferred cut points.
	// If empty and Pattern is also empty, pattern.DefaultDelimiters is used.
	Delimiters []byte

	// Pattern is a multi-byte cut point. If set, it takes precedence over
	// Delimiters.
	Pattern []byte

	// Prefix, when true, attaches the matched delimiter/pattern to the next
	// chunk instead of the current one.
	Prefix bool

	// Consecutive, when true, treats a run of adjacent delimiter/pattern
	// matches atomically: the cut is placed at the boundary of the run
	// rather than within it.
	Consecutive bool

	// ForwardFallback, when true, searches past the target size for the
	// next match if none falls within the backward search window. When
	// false, the chunker cuts hard at the target size in that case.
	ForwardFallback bool
}

func (c *Config) size() int {
	if c == nil || c.Size <= 0 {
		return DefaultTargetSize
	}
	return c.Size
}

func (c *Config) prefix() bool          { return c != nil && c.Prefix }
func (c *Config) consecutive() bool     { return c != nil && c.Consecutive }
func (c *Config) forwardFallback() bool { return c != nil && c.ForwardFallback }

// matcher abstracts over a single-byte delimiter set and a multi-byte
// pattern so the cut-point search in Chunker.nextCut can treat them
// uniformly: both report matches as (position, length) pairs.
type matcher interface {
	// matchAt reports the match, if any, whose bytes begin exactly at pos.
	matchAt(buf []byte, pos int) (length int, ok bool)
}

type delimMatcher struct{ d *pattern.Delimiters }

func (m delimMatcher) matchAt(buf []byte, pos int) (int, bool) {
	if pos < 0 || pos >= len(buf) || !m.d.Contains(buf[pos]) {
		return 0, false
	}
	return 1, true
}

type patternMatcher struct{ p []byte }

func (m patternMatcher) matchAt(buf []byte, pos int) (int, bool) {
	if pos < 0 || pos+len(m.p) > len(buf) {
		return 0, false
	}
	for i, b := range m.p {
		if buf[pos+i] != b {
			return 0, false
		}
	}
	return len(m.p), true
}

// newMatcher picks the matcher for c: a non-empty Pattern always wins over
// Delimiters, per spec. Absent either, pattern.DefaultDelimiters applies.
func newMatcher(c *Config) matcher {
	if c != nil && len(c.Pattern) > 0 {
		return patternMatcher{p: c.Pattern}
	}
	if c != nil && len(c.Delimiters) > 0 {
		return delimMatcher{d: pattern.NewDelimiters(c.Delimiters)}
	}
	return delimMatcher{d: pattern.NewDelimiters(pattern.DefaultDelimiters)}
}

// New returns a Chunker over buf using the settings in c. A nil *Config
// uses DefaultTargetSize and pattern.DefaultDelimiters. New does not copy
// buf; the caller must not mutate it while the Chunker is in use (use
// NewOwned for a copying variant).
func New(buf []byte, c *Config) *Chunker {
	return &Chunker{
		buf:             buf,
		size:            c.size(),
		match:           newMatcher(c),
		prefix:          c.prefix(),
		consecutive:     c.consecutive(),
		forwardFallback: c.forwardFallback(),
	}
}

// A Chunker is a stateful iterator that splits a byte buffer into
// size-bounded chunks. The zero value is not usable; construct one with
// New or NewOwned.
type Chunker struct {
	buf   []byte
	size  int
	match matcher

	prefix          bool
	consecutive     bool
	forwardFallback bool

	cursor int // next unread offset; cursor == len(buf) is terminal
}

// Reset returns the cursor to the beginning of the buffer so the Chunker
// can be drained again.
func (c *Chunker) Reset() { c.cursor = 0 }

// Done reports whether the Chunker has no more chunks to emit.
func (c *Chunker) Done() bool { return c.cursor >= len(c.buf) }

// Next returns the next chunk, or nil, false when the buffer is exhausted.
// The returned slice aliases the Chunker's buffer; it is valid for as long
// as the buffer is not mutated or, for an owned Chunker, for the lifetime
// of the Chunker.
func (c *Chunker) Next() ([]byte, bool) {
	start, end, ok := c.NextOffsets()
	if !ok {
		return nil, false
	}
	return c.buf[start:end], true
}

// NextOffsets returns the (start, end) half-open byte range of the next
// chunk and advances the cursor past it, or returns ok=false when the
// buffer is exhausted.
func (c *Chunker) NextOffsets() (start, end int, ok bool) {
	if c.Done() {
		return 0, 0, false
	}
	start = c.cursor
	cut := c.nextCut(start)
	c.cursor = cut
	return start, cut, true
}

// nextCut implements spec §4.3: it picks the cut point for the chunk that
// begins at start.
func (c *Chunker) nextCut(start int) int {
	n := len(c.buf)
	window := start + c.size
	if window >= n {
		return n
	}

	if p, l, ok := c.lastMatchIn(start, window); ok {
		return c.cutAfterMatch(start, p, l)
	}
	if !c.forwardFallback {
		return window
	}
	if p, l, ok := c.firstMatchFrom(window, n); ok {
		// Spec §4.3's forward-fallback bullet cuts using "the same prefix
		// rule" against this single found match; it does not re-apply the
		// consecutive run-boundary search here (that's a backward-window
		// concept, expanding around an anchor inside the size window). See
		// DESIGN.md for the Open Question record.
		return c.cutSingleMatch(start, p, l)
	}
	return n
}

// lastMatchIn returns the start and length of the latest match that both
// begins and ends within [from, to), the backward search window. Requiring
// the whole match to fit in the window keeps the emitted chunk within the
// target size even for a multi-byte pattern whose match could otherwise
// straddle the boundary.
func (c *Chunker) lastMatchIn(from, to int) (pos, length int, ok bool) {
	for i := to - 1; i >= from; i-- {
		if l, hit := c.match.matchAt(c.buf, i); hit && i+l <= to {
			return i, l, true
		}
	}
	return 0, 0, false
}

// firstMatchFrom returns the earliest match beginning in [from, to).
func (c *Chunker) firstMatchFrom(from, to int) (pos, length int, ok bool) {
	for i := from; i < to; i++ {
		if l, hit := c.match.matchAt(c.buf, i); hit {
			return i, l, true
		}
	}
	return 0, 0, false
}

// cutAfterMatch computes the cut point for a chunk starting at start, given
// an anchor match at (p, l) found in the backward search window. It
// implements the consecutive-run expansion and the prefix/attach policy
// from spec §4.3.
func (c *Chunker) cutAfterMatch(start, p, l int) int {
	if !c.consecutive {
		return c.cutSingleMatch(start, p, l)
	}

	// Expand left from p to find the start of the maximal run of
	// immediately adjacent matches of length l containing p.
	runStart := p
	for runStart-l >= start {
		if ml, hit := c.match.matchAt(c.buf, runStart-l); hit && ml == l {
			runStart -= l
		} else {
			break
		}
	}
	k := (p-runStart)/l + 1 // number of matches in the run
	if c.prefix {
		// Same empty-chunk guard as in cutSingleMatch: a run starting at cursor must
		// still advance by at least one match length.
		return max(runStart, start+l)
	}
	return runStart + k*l
}

// cutSingleMatch computes the cut point for a chunk starting at start given
// a single anchor match at (p, l), applying the prefix/attach policy but no
// consecutive-run expansion.
func (c *Chunker) cutSingleMatch(start, p, l int) int {
	if c.prefix {
		// A match starting exactly at cursor would otherwise cut to an
		// empty chunk; advance past it instead.
		return max(p, start+l)
	}
	return p + l
}

// CollectOffsets drains the Chunker from the current cursor to the end of
// the buffer, returning every (start, end) pair. It leaves the cursor at
// len(buf).
func (c *Chunker) CollectOffsets() [][2]int {
	var out [][2]int
	for {
		s, e, ok := c.NextOffsets()
		if !ok {
			break
		}
		out = append(out, [2]int{s, e})
	}
	return out
}

// CollectChunks drains the Chunker the same way as CollectOffsets but
// returns materialized byte slices instead of offsets.
func (c *Chunker) CollectChunks() [][]byte {
	offs := c.CollectOffsets()
	out := make([][]byte, len(offs))
	for i, o := range offs {
		out[i] = c.buf[o[0]:o[1]]
	}
	return out
}
