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

// Program chunk is a command-line front end over the byte-level chunking,
// splitting, and merge-planning packages in this module.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/creachadair/command"

	// Subcommands.
	"github.com/chonkie-inc/chunk/cmd/chunk/internal/cmdchunk"
	"github.com/chonkie-inc/chunk/cmd/chunk/internal/cmdmerge"
	"github.com/chonkie-inc/chunk/cmd/chunk/internal/cmdsplit"
)

func main() {
	root := &command.C{
		Name: filepath.Base(os.Args[0]),
		Usage: `<command> [arguments]
help [<command>]`,
		Help: `A command-line tool for size-bounded chunking and delimiter splitting.`,

		SetFlags: func(_ *command.Env, fs *flag.FlagSet) {},

		Commands: []*command.C{
			cmdchunk.Command,
			cmdsplit.Command,
			cmdmerge.Command,
			command.HelpCommand(nil),
		},
	}
	command.RunOrFail(root.NewEnv(nil), os.Args[1:])
}
