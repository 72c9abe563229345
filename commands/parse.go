// Copyright 2025 Naren Yellavula
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

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrBadCommand marks malformed or unknown command lines.
var ErrBadCommand = errors.New("bad command")

func badCommand(cmd *Command, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrBadCommand, cmd.FullName, fmt.Sprintf(format, args...))
}

// splitLine splits a command line into parts. Species names such as
// "Shumard's oak" carry unbalanced quotes, those lines fall back to plain
// whitespace splitting.
func splitLine(line string) []string {
	args, err := shellwords.Parse(line)
	if err != nil {
		return strings.Fields(line)
	}
	return args
}

// ParseLine turns a command file line into a Command. Blank lines and
// lines starting with '#' yield nil.
func ParseLine(line string) *Command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	parts := splitLine(trimmed)
	if len(parts) == 0 {
		return nil
	}
	return NewCommand(parts)
}

func intArg(cmd *Command, n int, what string) (int, error) {
	if !cmd.HasArgs(n + 1) {
		return 0, badCommand(cmd, "missing %s", what)
	}
	v, err := strconv.Atoi(cmd.Arg(n))
	if err != nil {
		return 0, badCommand(cmd, "invalid %s %q", what, cmd.Arg(n))
	}
	return v, nil
}

func floatArg(cmd *Command, n int, what string) (float64, error) {
	if !cmd.HasArgs(n + 1) {
		return 0, badCommand(cmd, "missing %s", what)
	}
	v, err := strconv.ParseFloat(cmd.Arg(n), 64)
	if err != nil {
		return 0, badCommand(cmd, "invalid %s %q", what, cmd.Arg(n))
	}
	return v, nil
}
