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

package chunker_test

import (
	"testing"

	"github.com/chonkie-inc/chunk/chunker"
	"github.com/google/go-cmp/cmp"
)

func offsetStrings(text string, offs [][2]int) []string {
	out := make([]string, len(offs))
	for i, o := range offs {
		out[i] = text[o[0]:o[1]]
	}
	return out
}

func TestChunkScenario1(t *testing.T) {
	text := "Hello. World. Test."
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:       10,
		Delimiters: []byte("."),
	})
	got := offsetStrings(text, offs)
	want := []string{"Hello.", " World.", " Test."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkEmptyBuffer(t *testing.T) {
	offs := chunker.ChunkOffsetsString("", nil)
	if len(offs) != 0 {
		t.Errorf("ChunkOffsetsString(empty) = %v, want none", offs)
	}
}

func TestChunkNoDelimiterHardCut(t *testing.T) {
	text := "abcdefghij" // 10 bytes, no delimiters
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{Size: 3, Delimiters: []byte("X")})
	want := [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}}
	if diff := cmp.Diff(want, offs); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkSizeBoundWithoutForwardFallback(t *testing.T) {
	text := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // no delimiter, 40 bytes
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{Size: 7, Delimiters: []byte(".")})
	for _, o := range offs {
		if o[1]-o[0] > 7 {
			t.Errorf("chunk [%d,%d) exceeds size bound 7", o[0], o[1])
		}
	}
}

func TestChunkForwardFallback(t *testing.T) {
	text := "aaaaaaaaaa.bbbbbbbbbb" // delimiter at index 10, window [0,5) has none
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:            5,
		Delimiters:      []byte("."),
		ForwardFallback: true,
	})
	if len(offs) == 0 {
		t.Fatal("expected at least one chunk")
	}
	// The first chunk should extend to the delimiter at 10, i.e. end at 11.
	if offs[0] != [2]int{0, 11} {
		t.Errorf("first chunk = %v, want [0,11)", offs[0])
	}
}

func TestChunkForwardFallbackConsecutiveDoesNotExpandRun(t *testing.T) {
	// "aaaaa" then three non-overlapping "xy" matches at 5, 7, 9. The
	// backward window [0,6) contains no match that fits entirely inside it
	// (the "xy" at 5 straddles the window edge, ending at 7), so the
	// forward-fallback search starting at the window edge (6) finds the
	// *next* match, at 7. With prefix=true, the cut belongs just before
	// that match, at 7 -- not at 5, which would only be reached by
	// re-running the consecutive run-boundary expansion backward from the
	// forward-found match into the window that had no fitting match.
	text := "aaaaaxyxyxy"
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:            6,
		Pattern:         []byte("xy"),
		Prefix:          true,
		Consecutive:     true,
		ForwardFallback: true,
	})
	if len(offs) == 0 {
		t.Fatal("expected at least one chunk")
	}
	if offs[0] != [2]int{0, 7} {
		t.Errorf("first chunk = %v, want [0,7)", offs[0])
	}
}

func TestChunkPrefixAttachesToNext(t *testing.T) {
	text := "abc.def.ghi"
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:       10,
		Delimiters: []byte("."),
		Prefix:     true,
	})
	// The window [0,10) ends before the buffer does; the latest match in it
	// is the '.' at index 7, and prefix=true cuts at p (7), so "abc.def" is
	// the first chunk and ".ghi" the remainder.
	got := offsetStrings(text, offs)
	for _, s := range got {
		if s == "" {
			t.Errorf("unexpected empty chunk in %v", got)
		}
	}
	if diff := cmp.Diff([]string{"abc.def", ".ghi"}, got); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkConsecutiveRun(t *testing.T) {
	text := "word   next" // three spaces at indices 4,5,6
	// Size 8 puts the window edge inside "next", so the run falls in the
	// backward search window; a window reaching the end of the buffer would
	// emit the whole buffer as one chunk.
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:        8,
		Pattern:     []byte(" "),
		Consecutive: true,
		Prefix:      false,
	})
	if len(offs) == 0 {
		t.Fatal("expected at least one chunk")
	}
	first := offs[0]
	want := text[:7] // "word   " -- cut just after the run, not inside it
	if text[first[0]:first[1]] != want {
		t.Errorf("first chunk = %q, want %q", text[first[0]:first[1]], want)
	}
}

func TestChunkConsecutiveRunPrefix(t *testing.T) {
	text := "word   next"
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:        8,
		Pattern:     []byte(" "),
		Consecutive: true,
		Prefix:      true,
	})
	if len(offs) == 0 {
		t.Fatal("expected at least one chunk")
	}
	first := offs[0]
	want := "word" // cut at the start of the run when prefix=true
	if text[first[0]:first[1]] != want {
		t.Errorf("first chunk = %q, want %q", text[first[0]:first[1]], want)
	}
}

func TestChunkPatternPrecedenceOverDelimiters(t *testing.T) {
	text := "a.b.c.d"
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{
		Size:       3,
		Delimiters: []byte("."),
		Pattern:    []byte("X"), // never occurs, so delimiters would have mattered
	})
	// Since the pattern never matches, the delimiters must be ignored and
	// every chunk is a hard cut at size 3.
	want := [][2]int{{0, 3}, {3, 6}, {6, 7}}
	if diff := cmp.Diff(want, offs); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkCoverageAndMonotonic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. It runs fast. Done?"
	offs := chunker.ChunkOffsetsString(text, &chunker.Config{Size: 12})
	var rebuilt string
	prevEnd := 0
	for i, o := range offs {
		if o[0] != prevEnd {
			t.Fatalf("chunk %d starts at %d, want %d", i, o[0], prevEnd)
		}
		if o[0] >= o[1] {
			t.Fatalf("chunk %d is empty or inverted: %v", i, o)
		}
		rebuilt += text[o[0]:o[1]]
		prevEnd = o[1]
	}
	if rebuilt != text {
		t.Errorf("coverage failed: got %q, want %q", rebuilt, text)
	}
	if prevEnd != len(text) {
		t.Errorf("final offset %d != len(text) %d", prevEnd, len(text))
	}
}

func TestChunkerResetIdempotent(t *testing.T) {
	text := "one two three four five six seven eight"
	c := chunker.New([]byte(text), &chunker.Config{Size: 8, Delimiters: []byte(" ")})
	first := c.CollectOffsets()
	c.Reset()
	second := c.CollectOffsets()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reset+collect mismatch (-first +second):\n%s", diff)
	}
}

func TestChunkerDoneAndNext(t *testing.T) {
	c := chunker.New([]byte("ab"), &chunker.Config{Size: 1})
	if c.Done() {
		t.Fatal("Done() true before draining")
	}
	var got []string
	for {
		chunk, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, string(chunk))
	}
	if !c.Done() {
		t.Error("Done() false after draining")
	}
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestOwnedChunkerCopiesInput(t *testing.T) {
	buf := []byte("hello world")
	oc := chunker.NewOwned(buf, &chunker.Config{Size: 5})
	buf[0] = 'H' // mutate caller's copy after construction
	chunks := oc.CollectChunks()
	if string(chunks[0][:1]) != "h" {
		t.Errorf("owned chunker observed caller mutation: first chunk %q", chunks[0])
	}
}

func TestBatchPreservesOrder(t *testing.T) {
	texts := [][]byte{
		[]byte("alpha.beta.gamma"),
		[]byte("one.two.three.four"),
		[]byte(""),
	}
	got := chunker.Batch(texts, &chunker.Config{Size: 6, Delimiters: []byte(".")})
	if len(got) != len(texts) {
		t.Fatalf("Batch returned %d results, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		want := chunker.ChunkOffsets(text, &chunker.Config{Size: 6, Delimiters: []byte(".")})
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("Batch[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := chunker.Fingerprint([]byte("hello"))
	b := chunker.Fingerprint([]byte("hello"))
	if a != b {
		t.Errorf("Fingerprint not deterministic: %d != %d", a, b)
	}
	c := chunker.Fingerprint([]byte("world"))
	if a == c {
		t.Errorf("Fingerprint collision between distinct inputs")
	}
}
