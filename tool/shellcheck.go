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
	"naive.systems/shellreview/filter"
	"naive.systems/shellreview/i18n"
	"naive.systems/shellreview/review"
	"naive.systems/shellreview/shellcheck"
	"naive.systems/shellreview/stats"
)

const (
	ShellCheckName        = "ShellCheck"
	ShellCheckVersion     = "0.1.0"
	ShellCheckDescription = "A Review Bot tool that runs ShellCheck, a static analysis tool for bash/shell scripts"
)

type Settings struct {
	Markdown       bool
	Lang           string
	Command        []string
	IgnorePatterns []string
}

type ShellCheckTool struct {
	settings Settings
}

func NewShellCheckTool(settings Settings) *ShellCheckTool {
	if len(settings.Command) == 0 {
		settings.Command = shellcheck.DefaultCommand
	}
	if settings.Lang == "" {
		settings.Lang = i18n.DefaultLang
	}
	return &ShellCheckTool{settings: settings}
}

func (t *ShellCheckTool) Name() string        { return ShellCheckName }
func (t *ShellCheckTool) Version() string     { return ShellCheckVersion }
func (t *ShellCheckTool) Description() string { return ShellCheckDescription }

func (t *ShellCheckTool) Options() []Option {
	printer := i18n.GetPrinter(t.settings.Lang)
	return []Option{
		{
			Name:     "markdown",
			Type:     BoolOption,
			Default:  false,
			Label:    printer.Sprintf(i18n.MarkdownLabel),
			HelpText: printer.Sprintf(i18n.MarkdownHelpText),
			Required: false,
		},
	}
}

func (t *ShellCheckTool) CheckDependencies() bool {
	return shellcheck.CheckDependencies(t.settings.Command)
}

func (t *ShellCheckTool) Prepare(r *review.Review) {
	if t.settings.Markdown {
		r.BodyTopTextType = review.Markdown
	}
}

func (t *ShellCheckTool) format() CommentFormat {
	if t.settings.Markdown {
		return MarkdownFormat()
	}
	return PlainFormat(t.settings.Lang)
}

// HandleFile checks one file of the review and comments on its violations.
// It returns false when the file was skipped.
func (t *ShellCheckTool) HandleFile(f *review.File, summary *stats.Summary) bool {
	if !shellcheck.IsShellScript(f.LocalPath()) {
		glog.V(1).Infof("%s is not a shell script", f.DestFile)
		return false
	}
	matched, err := filter.MatchIgnorePatterns(t.settings.IgnorePatterns, f.DestFile)
	if err != nil {
		glog.Error(err)
		return false
	}
	if matched {
		return false
	}

	path, err := f.GetPatchedFilePath()
	if err != nil || path == "" {
		glog.Warningf("could not get patched file for %s: %v", f.DestFile, err)
		return false
	}
	result, err := shellcheck.Run(t.settings.Command, path)
	if err != nil {
		glog.Errorf("failed to check %s: %v", f.DestFile, err)
		return false
	}

	violations := result.Violations.Sorted()
	glog.Infof("%s: %d violations", f.DestFile, len(violations))
	PostComments(violations, f, t.format())
	if summary != nil {
		summary.AccumulateViolations(violations)
		summary.AccumulateLines(path)
	}
	return true
}
