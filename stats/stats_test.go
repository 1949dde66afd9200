/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"naive.systems/shellreview/shellcheck"
)

func TestAccumulateViolations(t *testing.T) {
	s := NewSummary("review", "ShellCheck")
	s.AccumulateViolations([]shellcheck.Violation{
		{Line: 2, Text: "a", Rule: "SC2086"},
		{Line: 3, Text: "a", Rule: "SC2086"},
		{Line: 17, Text: "b", Rule: "SC2140"},
	})
	s.AccumulateViolations(nil)
	if s.Violations != 3 {
		t.Errorf("unexpected violation count: %d", s.Violations)
	}
	expected := map[string]int{"SC2086": 2, "SC2140": 1}
	if !reflect.DeepEqual(s.ByRule, expected) {
		t.Errorf("unexpected counts by rule. got: %v, expected: %v", s.ByRule, expected)
	}
}

func TestCountLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.sh")
	content := "#!/bin/sh\n# deploy docs\n\necho start\necho done\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	lines, err := CountLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// gocloc counts the shebang as code
	if lines != 3 {
		t.Errorf("unexpected number of code lines: %d", lines)
	}
	s := NewSummary("review", "ShellCheck")
	s.AccumulateLines(path)
	s.AccumulateLines(path)
	if s.LinesOfCode != 6 {
		t.Errorf("unexpected lines of code: %d", s.LinesOfCode)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	s := NewSummary("review", "ShellCheck")
	s.Files = 3
	s.Handled = 2
	s.Skipped = 1
	if err := s.Write(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, SummaryFileName))
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	var written Summary
	if err := json.Unmarshal(content, &written); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if written.Files != 3 || written.Handled != 2 || written.Skipped != 1 || written.Tool != "ShellCheck" {
		t.Errorf("unexpected summary written: %+v", written)
	}
}
