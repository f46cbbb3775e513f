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

package merge

// MergeSplits is the materializing companion to FindMergeIndices: given the
// segment strings themselves (splits) alongside their token counts, it
// concatenates the segments within each planned chunk (no separator) and
// returns the merged strings together with their token counts.
//
// MergeSplits computes its boundaries the same way FindMergeIndices does,
// so the two remain consistent for the same (tokenCounts, chunkSize) pair.
// splits and tokenCounts must be the same length; MergeSplits panics
// otherwise.
func MergeSplits(splits []string, tokenCounts []int, chunkSize int, combineWhitespace bool) (merged []string, tokens []int) {
	if len(splits) != len(tokenCounts) {
		panic("merge: splits and tokenCounts must have equal length")
	}
	plan := FindMergeIndices(tokenCounts, chunkSize, combineWhitespace)

	merged = make([]string, len(plan.Ends))
	cur := 0
	for i, end := range plan.Ends {
		var sb []byte
		for _, s := range splits[cur:end] {
			sb = append(sb, s...)
		}
		merged[i] = string(sb)
		cur = end
	}
	return merged, plan.Tokens
}
