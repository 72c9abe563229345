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
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const DefaultSuggestions = 3

type Options struct {
	// Suggestions is the number of hints tree_info prints on a miss.
	Suggestions int
	// Plain disables header styling.
	Plain   bool
	Palette Palette
	Logger  zerolog.Logger
}

// Summary counts the lines processed by RunScript.
type Summary struct {
	Executed int
	Failed   int
}

// Dispatcher routes command lines to the registered handlers
type Dispatcher struct {
	handlers map[string]Handler
	querier  Querier
	report   *Report
	log      zerolog.Logger
}

// NewDispatcher creates a dispatcher writing to out with every built-in
// command registered
func NewDispatcher(q Querier, out io.Writer, opts Options) *Dispatcher {
	styles := Styles{}
	if !opts.Plain {
		styles = NewStyles(out, opts.Palette)
	}

	d := &Dispatcher{
		handlers: make(map[string]Handler),
		querier:  q,
		report:   NewReport(out, styles),
		log:      opts.Logger.With().Str("scope", "commands").Logger(),
	}

	d.RegisterHandler(&TreeInfoHandler{Suggestions: opts.Suggestions})
	d.RegisterHandler(&ListAllNamesHandler{})
	d.RegisterHandler(&ListAllInZipHandler{})
	d.RegisterHandler(&ListNearHandler{})
	d.RegisterHandler(&PrintAllHandler{})
	d.RegisterHandler(&RemoveStumpsHandler{})
	d.RegisterHandler(&FindTreeHandler{})

	return d
}

// RegisterHandler registers h under its name, replacing any previous one
func (d *Dispatcher) RegisterHandler(h Handler) {
	d.handlers[h.Name()] = h
}

// Execute runs a single command line. Blank and comment lines are ignored.
func (d *Dispatcher) Execute(line string) error {
	cmd := ParseLine(line)
	if cmd == nil {
		return nil
	}

	h, ok := d.handlers[cmd.Verb]
	if !ok {
		return badCommand(cmd, "unknown command %q", cmd.Verb)
	}
	return h.Run(cmd, d.querier, d.report)
}

// RunScript executes every line of r in order. Bad commands are logged and
// skipped, any other failure stops the script.
func (d *Dispatcher) RunScript(r io.Reader) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if ParseLine(line) == nil {
			continue
		}

		err := d.Execute(line)
		if errors.Is(err, ErrBadCommand) {
			summary.Failed++
			d.log.Warn().Int("line", lineNo).Err(err).Msg("skipping command")
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", lineNo, err)
		}
		summary.Executed++
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read commands: %w", err)
	}

	d.log.Debug().Int("executed", summary.Executed).Int("failed", summary.Failed).Msg("command script finished")
	return summary, nil
}
