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

// Package cmdchunk implements the "chunk" subcommand, which applies the
// size-bounded chunker to one or more files.
package cmdchunk

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"
	"github.com/creachadair/taskgroup"

	"github.com/chonkie-inc/chunk/chunker"
)

var flags struct {
	Size            int
	Delimiters      string
	Pattern         string
	Prefix          bool
	Consecutive     bool
	ForwardFallback bool
	OutDir          string
}

var Command = &command.C{
	Name:  "chunk",
	Usage: "<path> ...",
	Help: `Split each input file into size-bounded chunks.

Each file is chunked independently and concurrently. With -out, each
emitted chunk is written to its own file under the given directory;
otherwise chunks are printed to stdout separated by a form-feed byte.
`,

	SetFlags: func(_ *command.Env, fs *flag.FlagSet) {
		fs.IntVar(&flags.Size, "size", chunker.DefaultTargetSize, "Target chunk size in bytes")
		fs.StringVar(&flags.Delimiters, "delimiters", "", "Delimiter bytes (default: newline, period, question mark)")
		fs.StringVar(&flags.Pattern, "pattern", "", "Multi-byte cut pattern (overrides -delimiters)")
		fs.BoolVar(&flags.Prefix, "prefix", false, "Attach the delimiter/pattern to the next chunk")
		fs.BoolVar(&flags.Consecutive, "consecutive", false, "Treat a run of adjacent matches as one cut point")
		fs.BoolVar(&flags.ForwardFallback, "forward-fallback", false, "Search past the target size when no match falls within it")
		fs.StringVar(&flags.OutDir, "out", "", "Write each chunk to its own file under this directory")
	},

	Run: runChunk,
}

func runChunk(env *command.Env, args []string) error {
	if len(args) == 0 {
		return errors.New("missing required input path")
	}
	cfg := &chunker.Config{
		Size:            flags.Size,
		Delimiters:      []byte(flags.Delimiters),
		Pattern:         []byte(flags.Pattern),
		Prefix:          flags.Prefix,
		Consecutive:     flags.Consecutive,
		ForwardFallback: flags.ForwardFallback,
	}
	if flags.OutDir != "" {
		if err := os.MkdirAll(flags.OutDir, 0700); err != nil {
			return err
		}
	}

	texts := make([][]byte, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		texts[i] = data
	}

	// Chunking runs concurrently across files, but emission is sequential:
	// writing chunks from several files to stdout at once would interleave
	// their bytes.
	allChunks := make([][][]byte, len(texts))
	g, run := taskgroup.New(nil).Limit(min(len(texts), 16))
	for i, text := range texts {
		i, text := i, text
		run(func() error {
			allChunks[i] = chunker.New(text, cfg).CollectChunks()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, path := range args {
		if err := emit(path, i, allChunks[i]); err != nil {
			return err
		}
	}
	return nil
}

func emit(path string, fileIndex int, chunks [][]byte) error {
	if flags.OutDir == "" {
		for _, c := range chunks {
			if _, err := os.Stdout.Write(c); err != nil {
				return err
			}
			if _, err := os.Stdout.Write([]byte{'\f'}); err != nil {
				return err
			}
		}
		return nil
	}
	base := filepath.Base(path)
	for i, c := range chunks {
		out := filepath.Join(flags.OutDir, fmt.Sprintf("%s.%04d.%04d", base, fileIndex, i))
		if err := atomicfile.WriteData(out, c, 0600); err != nil {
			return fmt.Errorf("writing %q: %w", out, err)
		}
	}
	return nil
}
