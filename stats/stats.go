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
	"fmt"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/hhatto/gocloc"
	"naive.systems/shellreview/atomic"
	"naive.systems/shellreview/shellcheck"
)

const SummaryFileName = "summary.json"

type Summary struct {
	ReviewID    string         `json:"review_id"`
	Tool        string         `json:"tool"`
	ToolSkipped bool           `json:"tool_skipped"`
	Files       int            `json:"files"`
	Handled     int            `json:"handled"`
	Skipped     int            `json:"skipped"`
	Violations  int            `json:"violations"`
	ByRule      map[string]int `json:"by_rule"`
	LinesOfCode int            `json:"lines_of_code"`
}

func NewSummary(reviewID, tool string) *Summary {
	return &Summary{
		ReviewID: reviewID,
		Tool:     tool,
		ByRule:   make(map[string]int),
	}
}

func (s *Summary) AccumulateViolations(violations []shellcheck.Violation) {
	for _, v := range violations {
		s.Violations++
		s.ByRule[v.Rule]++
	}
}

// AccumulateLines adds the code lines of path, as counted by gocloc. Files in
// a language gocloc does not know count as zero.
func (s *Summary) AccumulateLines(path string) {
	lines, err := CountLines(path)
	if err != nil {
		glog.Warningf("failed to count lines of %s: %v", path, err)
		return
	}
	s.LinesOfCode += lines
}

func CountLines(path string) (int, error) {
	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze([]string{path})
	if err != nil {
		return 0, fmt.Errorf("gocloc: %v", err)
	}
	sum := 0
	for _, file := range result.Files {
		sum += int(file.Code)
	}
	return sum, nil
}

func (s *Summary) Write(resultDir string) error {
	path := filepath.Join(resultDir, SummaryFileName)
	err := atomic.WriteJSON(path, s)
	if err != nil {
		return fmt.Errorf("failed to write to file %s: %v", path, err)
	}
	return nil
}
