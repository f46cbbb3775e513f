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

package pattern_test

import (
	"reflect"
	"testing"

	"github.com/chonkie-inc/chunk/pattern"
)

func bs(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestCompileErrors(t *testing.T) {
	if _, err := pattern.Compile(nil); err != pattern.ErrNoPatterns {
		t.Errorf("Compile(nil): got %v, want ErrNoPatterns", err)
	}
	if _, err := pattern.Compile(bs("ab", "")); err != pattern.ErrEmptyPattern {
		t.Errorf("Compile with empty pattern: got %v, want ErrEmptyPattern", err)
	}
}

func TestFindSingle(t *testing.T) {
	a, err := pattern.Compile(bs("\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := a.Find([]byte("Para 1\n\nPara 2\n\nPara 3"))
	want := []pattern.Match{{Pos: 6, Len: 2}, {Pos: 14, Len: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find: got %+v, want %+v", got, want)
	}
}

func TestFindLeftmostLongest(t *testing.T) {
	// "abc" should win over "ab" when both start at the same position.
	a, err := pattern.Compile(bs("ab", "abc"))
	if err != nil {
		t.Fatal(err)
	}
	got := a.Find([]byte("xabcx"))
	want := []pattern.Match{{Pos: 1, Len: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find: got %+v, want %+v", got, want)
	}
}

func TestFindNonOverlapping(t *testing.T) {
	a, err := pattern.Compile(bs(" "))
	if err != nil {
		t.Fatal(err)
	}
	got := a.Find([]byte("word   next"))
	want := []pattern.Match{{Pos: 4, Len: 1}, {Pos: 5, Len: 1}, {Pos: 6, Len: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find: got %+v, want %+v", got, want)
	}
}

func TestFindDuplicatePatterns(t *testing.T) {
	a, err := pattern.Compile(bs("\n", "\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := a.Find([]byte("a\nb"))
	want := []pattern.Match{{Pos: 1, Len: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find: got %+v, want %+v", got, want)
	}
}

func TestFindNoMatch(t *testing.T) {
	a, err := pattern.Compile(bs("zz"))
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Find([]byte("abcdef")); got != nil {
		t.Errorf("Find: got %+v, want nil", got)
	}
}

func TestDelimiters(t *testing.T) {
	d := pattern.NewDelimiters([]byte{'.', '\n', '.'})
	if !d.Contains('.') || !d.Contains('\n') {
		t.Error("expected both configured delimiters to match")
	}
	if d.Contains('?') {
		t.Error("unexpected match for unconfigured delimiter")
	}
	if got, want := d.Bytes(), []byte{'\n', '.'}; !reflect.DeepEqual(got, want) {
		t.Errorf("Bytes: got %q, want %q", got, want)
	}
}

func TestDelimitersEmpty(t *testing.T) {
	d := pattern.NewDelimiters(nil)
	if !d.Empty() {
		t.Error("expected empty delimiter set")
	}
	if d.Contains('\n') {
		t.Error("empty set matched a byte")
	}
}
