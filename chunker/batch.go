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

import "github.com/creachadair/taskgroup"

// maxBatchWorkers bounds how many chunkers run at once, so a batch of
// thousands of small files doesn't spawn a goroutine per file.
const maxBatchWorkers = 64

// Batch chunks every buffer in texts concurrently, one Chunker per buffer,
// and returns their offsets in the same order as texts. Distinct Chunker
// instances share no state, so this is safe even though a single Chunker's
// cursor is not (spec §5).
func Batch(texts [][]byte, c *Config) [][][2]int {
	out := make([][][2]int, len(texts))
	limit := len(texts)
	if limit > maxBatchWorkers {
		limit = maxBatchWorkers
	} else if limit == 0 {
		limit = 1
	}
	g, run := taskgroup.New(nil).Limit(limit)
	for i, text := range texts {
		i, text := i, text
		run(func() error {
			out[i] = ChunkOffsets(text, c)
			return nil
		})
	}
	g.Wait()
	return out
}
