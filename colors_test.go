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

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybrota/arbor/commands"
)

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name     string
		colorfg  string
		theme    string
		expected TerminalMode
	}{
		{"dark background", "15;0", "", TerminalModeDark},
		{"light background", "0;15", "", TerminalModeLight},
		{"theme fallback", "", "Solarized Light", TerminalModeLight},
		{"nothing set", "", "", TerminalModeDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfg)
			t.Setenv("TERM_THEME", tt.theme)
			t.Setenv("THEME", "")
			assert.Equal(t, tt.expected, detectTerminalMode())
		})
	}
}

func TestReportPalette(t *testing.T) {
	assert.Equal(t, commands.DefaultPalette, reportPalette(TerminalModeDark))
	assert.NotEqual(t, commands.DefaultPalette, reportPalette(TerminalModeLight))
}

func TestHelpMessageMentionsCommands(t *testing.T) {
	msg := getHelpMessage()
	for _, verb := range []string{"tree_info", "listall_inzip", "list_near", "remove_stumps"} {
		assert.True(t, strings.Contains(msg, verb), "usage guide misses %s", verb)
	}
}
