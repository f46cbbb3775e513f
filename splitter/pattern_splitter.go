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

package splitter

import "github.com/chonkie-inc/chunk/pattern"

// A PatternSplitter compiles a set of multi-byte patterns once and reuses
// the compiled automaton across many calls to Split, avoiding the
// reconstruction cost SplitPatternOffsets pays on every call.
type PatternSplitter struct {
	automaton *pattern.Automaton
}

// NewPatternSplitter compiles patterns into a PatternSplitter. It returns
// pattern.ErrNoPatterns or pattern.ErrEmptyPattern if patterns is empty or
// contains an empty entry; these are construction-time failures, so a
// PatternSplitter that exists is always safe to use.
func NewPatternSplitter(patterns [][]byte) (*PatternSplitter, error) {
	a, err := pattern.Compile(patterns)
	if err != nil {
		return nil, err
	}
	return &PatternSplitter{automaton: a}, nil
}

// Split partitions buf using the compiled pattern set, the given attachment
// policy, and minimum segment length.
func (p *PatternSplitter) Split(buf []byte, inc IncludeDelim, minChars int) [][2]int {
	matches := fromPatternMatches(p.automaton.Find(buf))
	bounds := boundariesFor(matches, inc)
	segs := segmentsFrom(bounds, len(buf), inc)
	return mergeShort(segs, minChars)
}

// SplitString is Split for a string argument.
func (p *PatternSplitter) SplitString(text string, inc IncludeDelim, minChars int) [][2]int {
	return p.Split([]byte(text), inc, minChars)
}

// SplitPatternOffsets is a one-shot convenience that compiles patterns and
// splits buf in a single call. Prefer PatternSplitter when splitting many
// buffers with the same pattern set.
func SplitPatternOffsets(buf []byte, patterns [][]byte, inc IncludeDelim, minChars int) ([][2]int, error) {
	ps, err := NewPatternSplitter(patterns)
	if err != nil {
		return nil, err
	}
	return ps.Split(buf, inc, minChars), nil
}
