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
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/store"
)

func newTestStore() *store.RecordStore {
	s := store.NewRecordStore()
	records := []store.Record{
		{ID: 1, Species: "pin oak", Borough: "Queens", ZipCode: 11375, Latitude: 40.72, Longitude: -73.84},
		{ID: 2, Species: "London planetree", Borough: "Brooklyn", ZipCode: 11215, Latitude: 40.67, Longitude: -73.98},
		{ID: 3, Species: "pin oak", Borough: "Brooklyn", ZipCode: 11215, Latitude: 40.66, Longitude: -73.97},
		{ID: 4, Species: "honeylocust", Borough: "Manhattan", ZipCode: 10025, Latitude: 40.80, Longitude: -73.96},
		{ID: 5, Species: "pin oak", Borough: "Queens", ZipCode: 11375, Latitude: 40.73, Longitude: -73.85},
		{ID: 6, Species: "white oak", Borough: "Staten Island", ZipCode: 10314, Latitude: 40.60, Longitude: -74.15, Status: "Stump"},
		{ID: 7, Species: "honeylocust", Borough: "Brooklyn", ZipCode: 11215, Latitude: 40.67, Longitude: -73.99},
		{ID: 8, Species: "ginkgo", Borough: "Bronx", ZipCode: 10463, Latitude: 40.88, Longitude: -73.90},
	}
	for _, r := range records {
		s.Add(r)
	}
	return s
}

func newTestDispatcher(out *bytes.Buffer) *Dispatcher {
	return NewDispatcher(newTestStore(), out, Options{
		Suggestions: DefaultSuggestions,
		Plain:       true,
		Logger:      zerolog.Nop(),
	})
}

func row(name string, count, whole int, pct float64) string {
	return fmt.Sprintf("\t%-15s%12d  (%12d)%12.2f%%\n", name, count, whole, pct)
}

func TestTreeInfoReport(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("tree_info oak"))

	expected := "Command: tree_info oak\n" +
		"The matching species are: \n" +
		"\tpin oak\n" +
		"\twhite oak\n" +
		"Popularity in the city:\n" +
		row("New York City", 4, 8, 50) +
		row("Bronx", 0, 1, 0) +
		row("Manhattan", 0, 1, 0) +
		row("Brooklyn", 1, 3, 100.0/3) +
		row("Queens", 2, 2, 100) +
		row("Staten Island", 1, 1, 100)
	assert.Equal(t, expected, out.String())
}

func TestTreeInfoNoMatchSuggests(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("tree_info planetre"))
	assert.Contains(t, out.String(), "There are no matching species.")
	assert.Contains(t, out.String(), "Did you mean: London planetree?")
}

func TestTreeInfoMissingName(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	err := d.Execute("tree_info")
	assert.ErrorIs(t, err, ErrBadCommand)
	assert.Empty(t, out.String())
}

func TestListAllInZip(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("listall_inzip 11215"))
	expected := "Command: listall_inzip 11215\n" +
		fmt.Sprintf("\t%-22s%8d\n", "honeylocust", 1) +
		fmt.Sprintf("\t%-22s%8d\n", "London planetree", 1) +
		fmt.Sprintf("\t%-22s%8d\n", "pin oak", 1)
	assert.Equal(t, expected, out.String())
}

func TestListNear(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("list_near 40.725 -73.845 2"))
	expected := "Command: list_near 40.725000 -73.845000 2.000000\n" +
		fmt.Sprintf("\t%-22s%8d\n", "pin oak", 2)
	assert.Equal(t, expected, out.String())
}

func TestListNearValidation(t *testing.T) {
	bad := []string{
		"list_near",
		"list_near 90 0 1",
		"list_near -90 0 1",
		"list_near 40 181 1",
		"list_near 40 -73 -1",
		"list_near forty -73 1",
		"list_near 40 -73",
		"listall_inzip",
		"listall_inzip 123456",
		"plant_tree oak",
	}
	for _, line := range bad {
		var out bytes.Buffer
		d := newTestDispatcher(&out)
		err := d.Execute(line)
		assert.ErrorIs(t, err, ErrBadCommand, line)
		assert.Empty(t, out.String(), line)
	}
}

func TestListAllNamesAndPrintAll(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("listall_names"))
	assert.Equal(t, "Command: listall_names\nLondon planetree\nginkgo\nhoneylocust\npin oak\nwhite oak\n", out.String())

	out.Reset()
	require.NoError(t, d.Execute("print_all"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Command: print_all", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ginkgo,8,"))
	assert.True(t, strings.HasPrefix(lines[8], "white oak,6,"))
}

func TestRemoveStumps(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("remove_stumps"))
	assert.Equal(t, "Command: remove_stumps\n\t1 stumps found, removal is not supported\n", out.String())
}

func TestRunScriptSkipsBadCommands(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	script := strings.Join([]string{
		"# census queries",
		"tree_info ginkgo",
		"",
		"list_near 100 0 1",
		"bogus",
		"listall_inzip 10463",
	}, "\n")

	summary, err := d.RunScript(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, Summary{Executed: 2, Failed: 2}, summary)
	assert.Contains(t, out.String(), "Command: tree_info ginkgo")
	assert.Contains(t, out.String(), "Command: listall_inzip 10463")
	assert.NotContains(t, out.String(), "list_near")
}

type failingHandler struct{}

func (failingHandler) Name() string { return "explode" }

func (failingHandler) Run(cmd *Command, q Querier, rep *Report) error {
	return errors.New("boom")
}

func TestRunScriptStopsOnHandlerFailure(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)
	d.RegisterHandler(failingHandler{})

	summary, err := d.RunScript(strings.NewReader("listall_names\nexplode\nprint_all\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, summary.Executed)
	assert.NotContains(t, out.String(), "print_all")
}

func TestCountsAreGrouped(t *testing.T) {
	var out bytes.Buffer
	rep := NewReport(&out, Styles{})
	rep.Countf("%d", 1234567)
	assert.Equal(t, "1,234,567", out.String())
}

func TestFrequenciesCountsRuns(t *testing.T) {
	var out bytes.Buffer
	rep := NewReport(&out, Styles{})
	rep.Frequencies([]string{"ash", "ash", "elm", "oak", "oak", "oak"})
	expected := fmt.Sprintf("\t%-22s%8d\n\t%-22s%8d\n\t%-22s%8d\n", "ash", 2, "elm", 1, "oak", 3)
	assert.Equal(t, expected, out.String())
}

func newMixedSpellingDispatcher(out *bytes.Buffer) *Dispatcher {
	s := store.NewRecordStore()
	for _, r := range []store.Record{
		{ID: 1, Species: "Pin-Oak", Borough: "Queens", ZipCode: 11375, Latitude: 40.720, Longitude: -73.840},
		{ID: 2, Species: "pin oak", Borough: "Queens", ZipCode: 11375, Latitude: 40.721, Longitude: -73.841},
		{ID: 3, Species: "Pin-Oak", Borough: "Brooklyn", ZipCode: 11375, Latitude: 40.722, Longitude: -73.842},
		{ID: 4, Species: "", Borough: "Queens", ZipCode: 11375, Latitude: 40.723, Longitude: -73.843, Status: "Stump"},
	} {
		s.Add(r)
	}
	return NewDispatcher(s, out, Options{Plain: true, Logger: zerolog.Nop()})
}

func TestListNearGroupsSpellingsOfOneSpecies(t *testing.T) {
	var out bytes.Buffer
	d := newMixedSpellingDispatcher(&out)

	require.NoError(t, d.Execute("list_near 40.72 -73.84 1"))
	expected := "Command: list_near 40.720000 -73.840000 1.000000\n" +
		fmt.Sprintf("\t%-22s%8d\n", "", 1) +
		fmt.Sprintf("\t%-22s%8d\n", "Pin-Oak", 3)
	assert.Equal(t, expected, out.String())
}

func TestListAllInZipGroupsSpellingsOfOneSpecies(t *testing.T) {
	var out bytes.Buffer
	d := newMixedSpellingDispatcher(&out)

	require.NoError(t, d.Execute("listall_inzip 11375"))
	expected := "Command: listall_inzip 11375\n" +
		fmt.Sprintf("\t%-22s%8d\n", "", 1) +
		fmt.Sprintf("\t%-22s%8d\n", "Pin-Oak", 1)
	assert.Equal(t, expected, out.String())
}

func TestTreeInfoCountsSpellingsOnce(t *testing.T) {
	var out bytes.Buffer
	d := newMixedSpellingDispatcher(&out)

	require.NoError(t, d.Execute("tree_info pin oak"))
	report := out.String()
	assert.Contains(t, report, "\tPin-Oak\n\tpin oak\n")
	assert.Contains(t, report, row("New York City", 3, 4, 75))
	assert.Contains(t, report, row("Queens", 2, 3, 200.0/3))
	assert.Contains(t, report, row("Brooklyn", 1, 1, 100))
}

func TestTreeInfoTrailingHyphen(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("tree_info oak-"))
	assert.Contains(t, out.String(), "\tpin oak\n\twhite oak\n")
}

func TestFindTree(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out)

	require.NoError(t, d.Execute("find_tree 3"))
	assert.Equal(t, "Command: find_tree 3\n\tpin oak,3,0,,,,11215,Brooklyn,40.66,-73.97\n", out.String())

	out.Reset()
	require.NoError(t, d.Execute("find_tree 3 Pin-Oak"))
	assert.Equal(t, "Command: find_tree 3 Pin-Oak\n\tpin oak,3,0,,,,11215,Brooklyn,40.66,-73.97\n", out.String())

	out.Reset()
	require.NoError(t, d.Execute("find_tree 3 ginkgo"))
	assert.Equal(t, "Command: find_tree 3 ginkgo\n\tno tree with id 3\n", out.String())

	out.Reset()
	require.NoError(t, d.Execute("find_tree 42"))
	assert.Equal(t, "Command: find_tree 42\n\tno tree with id 42\n", out.String())

	for _, line := range []string{"find_tree", "find_tree 0", "find_tree three"} {
		out.Reset()
		assert.ErrorIs(t, d.Execute(line), ErrBadCommand, line)
		assert.Empty(t, out.String(), line)
	}
}

func TestFrequenciesKeepsEmptyNames(t *testing.T) {
	var out bytes.Buffer
	rep := NewReport(&out, Styles{})
	rep.Frequencies([]string{"", "", "Red-Maple", "red maple", "Red-Maple"})
	expected := fmt.Sprintf("\t%-22s%8d\n\t%-22s%8d\n", "", 2, "Red-Maple", 3)
	assert.Equal(t, expected, out.String())
}
