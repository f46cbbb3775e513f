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

// An OwnedChunker wraps a Chunker over a private copy of its input, so the
// caller is free to discard or mutate whatever buffer it handed in. This is
// the shape a language binding wants: it owns the bytes the host passed it
// and hands out chunks whose lifetime is tied to the OwnedChunker, not to
// whatever the caller does next.
type OwnedChunker struct {
	*Chunker
}

// NewOwned copies text and returns an OwnedChunker over the copy.
func NewOwned(text []byte, c *Config) *OwnedChunker {
	buf := make([]byte, len(text))
	copy(buf, text)
	return &OwnedChunker{Chunker: New(buf, c)}
}

// NewOwnedString is a convenience wrapper that accepts a string, encoding
// it to UTF-8 bytes before chunking. All offsets returned refer to that
// UTF-8 byte representation, per spec §6/§9.
func NewOwnedString(text string, c *Config) *OwnedChunker {
	return NewOwned([]byte(text), c)
}
