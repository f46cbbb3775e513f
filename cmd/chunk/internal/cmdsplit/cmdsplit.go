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

// Package cmdsplit implements the "split" subcommand, which applies the
// delimiter/pattern splitter to a single file.
package cmdsplit

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"

	"github.com/chonkie-inc/chunk/splitter"
)

var flags struct {
	Delimiters string
	Pattern    string
	Include    string
	MinChars   int
	OutDir     string
}

var Command = &command.C{
	Name:  "split",
	Usage: "<path>",
	Help: `Split a file on a delimiter set or pattern.

With -out, each emitted segment is written to its own file under the
given directory; otherwise segments are printed to stdout separated by
a form-feed byte.
`,

	SetFlags: func(_ *command.Env, fs *flag.FlagSet) {
		fs.StringVar(&flags.Delimiters, "delimiters", "", "Delimiter bytes (default: newline, period, question mark)")
		fs.StringVar(&flags.Pattern, "pattern", "", "Multi-byte split pattern (overrides -delimiters)")
		fs.StringVar(&flags.Include, "include", "prev", `Delimiter attachment: "prev", "next", or "none"`)
		fs.IntVar(&flags.MinChars, "min-chars", 0, "Minimum segment length before merging short segments")
		fs.StringVar(&flags.OutDir, "out", "", "Write each segment to its own file under this directory")
	},

	Run: runSplit,
}

func includeDelim(s string) (splitter.IncludeDelim, error) {
	switch s {
	case "prev":
		return splitter.Prev, nil
	case "next":
		return splitter.Next, nil
	case "none":
		return splitter.None, nil
	default:
		return 0, fmt.Errorf("invalid -include value %q, want prev, next, or none", s)
	}
}

func runSplit(env *command.Env, args []string) error {
	if len(args) != 1 {
		return errors.New("exactly one input path is required")
	}
	inc, err := includeDelim(flags.Include)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %q: %w", args[0], err)
	}

	var offs [][2]int
	if flags.Pattern != "" {
		offs, err = splitter.SplitPatternOffsets(data, [][]byte{[]byte(flags.Pattern)}, inc, flags.MinChars)
		if err != nil {
			return err
		}
	} else {
		offs = splitter.Split(data, &splitter.Config{
			Delimiters: []byte(flags.Delimiters),
			Include:    inc,
			MinChars:   flags.MinChars,
		})
	}

	if flags.OutDir == "" {
		for _, o := range offs {
			if _, err := os.Stdout.Write(data[o[0]:o[1]]); err != nil {
				return err
			}
			if _, err := os.Stdout.Write([]byte{'\f'}); err != nil {
				return err
			}
		}
		return nil
	}
	if err := os.MkdirAll(flags.OutDir, 0700); err != nil {
		return err
	}
	base := filepath.Base(args[0])
	for i, o := range offs {
		out := filepath.Join(flags.OutDir, fmt.Sprintf("%s.%04d", base, i))
		if err := atomicfile.WriteData(out, data[o[0]:o[1]], 0600); err != nil {
			return fmt.Errorf("writing %q: %w", out, err)
		}
	}
	return nil
}
