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

import (
	"sort"

	"github.com/creachadair/mds/mapset"
)

// Set represents a set of delimiter bytes. It is aliased here so callers do
// not need to import mapset directly, the same way blob.KeySet aliases
// mapset.Set[string] in the storage layer this package's sibling was
// adapted from.
type Set = mapset.Set[byte]

// NewSet builds a Set from bs. Duplicate bytes collapse to one member.
func NewSet(bs ...byte) Set {
	return mapset.New(bs...)
}

// Sorted returns the members of s in ascending order.
func Sorted(s Set) []byte {
	bs := s.Slice()
	sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
	return bs
}
