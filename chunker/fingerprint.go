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

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a 64-bit content hash of a chunk's bytes. It plays no
// part in cut placement; it exists so a caller building a downstream
// embedding or retrieval cache can key on chunk content without hashing it
// again, the same role content hashes play for addressing blobs in
// storage.
func Fingerprint(chunk []byte) uint64 {
	return xxhash.Sum64(chunk)
}

// FingerprintAll returns the Fingerprint of every chunk in chunks, in order.
func FingerprintAll(chunks [][]byte) []uint64 {
	out := make([]uint64, len(chunks))
	for i, c := range chunks {
		out[i] = Fingerprint(c)
	}
	return out
}
