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

package tool

import (
	"github.com/golang/glog"
	"naive.systems/shellreview/review"
	"naive.systems/shellreview/stats"
)

type OptionType string

const (
	BoolOption   OptionType = "bool"
	StringOption OptionType = "string"
)

// Option describes one setting a tool accepts from the host.
type Option struct {
	Name     string
	Type     OptionType
	Default  any
	Label    string
	HelpText string
	Required bool
}

type Tool interface {
	Name() string
	Version() string
	Description() string
	Options() []Option
	CheckDependencies() bool
	// Prepare is called once per review before any file is handled.
	Prepare(r *review.Review)
	HandleFile(f *review.File, summary *stats.Summary) bool
}

// Run hands every file of r to t and returns what happened. Files are
// independent: one that cannot be handled is counted as skipped.
func Run(t Tool, r *review.Review) *stats.Summary {
	summary := stats.NewSummary(r.ID, t.Name())
	summary.Files = len(r.Files)
	if !t.CheckDependencies() {
		glog.Errorf("%s %s is missing its dependencies, no file will be checked", t.Name(), t.Version())
		summary.ToolSkipped = true
		summary.Skipped = len(r.Files)
		return summary
	}
	defer r.Cleanup()

	t.Prepare(r)
	for _, f := range r.Files {
		if t.HandleFile(f, summary) {
			summary.Handled++
		} else {
			summary.Skipped++
		}
	}
	glog.Infof("%s handled %d of %d files, %d violations", t.Name(), summary.Handled, summary.Files, summary.Violations)
	return summary
}
