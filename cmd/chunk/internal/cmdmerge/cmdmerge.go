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

// Package cmdmerge implements the "merge" subcommand, which plans how a
// sequence of token counts should be packed into token-budgeted chunks.
package cmdmerge

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/command"

	"github.com/chonkie-inc/chunk/merge"
)

var flags struct {
	ChunkSize         int
	CombineWhitespace bool
}

var Command = &command.C{
	Name:  "merge",
	Usage: "<count> <count> ...",
	Help: `Plan merge boundaries over a sequence of token counts.

Prints one line per planned chunk: "end tokens", where end is the
exclusive boundary into the input sequence and tokens is that chunk's
total token count.
`,

	SetFlags: func(_ *command.Env, fs *flag.FlagSet) {
		fs.IntVar(&flags.ChunkSize, "chunk-size", 0, "Token budget per chunk (required, must be positive)")
		fs.BoolVar(&flags.CombineWhitespace, "combine-whitespace", false, "Add one synthetic token per segment for a whitespace join")
	},

	Run: runMerge,
}

func runMerge(env *command.Env, args []string) error {
	if flags.ChunkSize <= 0 {
		return errors.New("-chunk-size must be positive")
	}
	if len(args) == 0 {
		return errors.New("at least one token count is required")
	}
	counts := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return fmt.Errorf("invalid token count %q: %w", a, err)
		}
		counts[i] = n
	}

	plan := merge.FindMergeIndices(counts, flags.ChunkSize, flags.CombineWhitespace)
	for i, end := range plan.Ends {
		fmt.Fprintf(os.Stdout, "%d %d\n", end, plan.Tokens[i])
	}
	return nil
}
