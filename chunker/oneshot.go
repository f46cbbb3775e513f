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

package chunker

// ChunkOffsets is a one-shot convenience that chunks text and returns the
// (start, end) offset pairs in a single call, without requiring the caller
// to construct and drain a Chunker. Use this with slicing for the lowest
// overhead: text[start:end] for each returned pair.
func ChunkOffsets(text []byte, c *Config) [][2]int {
	return New(text, c).CollectOffsets()
}

// ChunkOffsetsString is ChunkOffsets for a string argument; the offsets
// returned are byte offsets into text's UTF-8 representation.
func ChunkOffsetsString(text string, c *Config) [][2]int {
	return ChunkOffsets([]byte(text), c)
}
