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

package options

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newOptions() *Options {
	return Register(flag.NewFlagSet("test", flag.ContinueOnError))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	o := newOptions()
	if err := o.Parse([]string{"--diff", "review.diff"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *o.Markdown || *o.Lang != "en" || *o.SrcDir != "." || *o.ShellCheckCmd != "shellcheck" {
		t.Errorf("unexpected defaults: markdown=%v lang=%s src_dir=%s shellcheck_cmd=%s", *o.Markdown, *o.Lang, *o.SrcDir, *o.ShellCheckCmd)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseConfigFile(t *testing.T) {
	config := writeConfig(t, `
diff: from-config.diff
src_dir: /src
markdown: true
lang: zh
shellcheck_cmd: shellcheck --shell=bash
ignore_dir:
  - vendor/**
`)
	o := newOptions()
	err := o.Parse([]string{"--config", config, "--diff", "from-flag.diff", "--ignore_dir", "third_party/**"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *o.Diff != "from-flag.diff" {
		t.Errorf("flags should win over the config file, got diff %s", *o.Diff)
	}
	if *o.SrcDir != "/src" || !*o.Markdown || *o.Lang != "zh" {
		t.Errorf("config values not applied: src_dir=%s markdown=%v lang=%s", *o.SrcDir, *o.Markdown, *o.Lang)
	}
	if !reflect.DeepEqual([]string(o.IgnoreDirPatterns), []string{"third_party/**"}) {
		t.Errorf("unexpected ignore patterns: %v", o.IgnoreDirPatterns)
	}
	cmd, err := o.Command()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cmd, []string{"shellcheck", "--shell=bash"}) {
		t.Errorf("unexpected command: %v", cmd)
	}
}

func TestParseConfigFileErrors(t *testing.T) {
	for _, testCase := range [...]struct {
		name   string
		config string
	}{
		{name: "unknown key", config: "markdwon: true\n"},
		{name: "wrong type", config: "markdown: [1, 2]\n"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			o := newOptions()
			if err := o.Parse([]string{"--config", writeConfig(t, testCase.config)}); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
	o := newOptions()
	if err := o.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestCommand(t *testing.T) {
	for _, testCase := range [...]struct {
		raw         string
		expected    []string
		expectedErr bool
	}{
		{raw: "shellcheck", expected: []string{"shellcheck"}},
		{raw: "/opt/bin/shellcheck -x --exclude=SC1091", expected: []string{"/opt/bin/shellcheck", "-x", "--exclude=SC1091"}},
		{raw: `shellcheck --rcfile "my config/.shellcheckrc"`, expected: []string{"shellcheck", "--rcfile", "my config/.shellcheckrc"}},
		{raw: "", expectedErr: true},
		{raw: "   ", expectedErr: true},
	} {
		t.Run(testCase.raw, func(t *testing.T) {
			o := newOptions()
			*o.ShellCheckCmd = testCase.raw
			cmd, err := o.Command()
			if testCase.expectedErr {
				if err == nil {
					t.Errorf("expected an error, got %v", cmd)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cmd, testCase.expected) {
				t.Errorf("unexpected command. got: %v, expected: %v", cmd, testCase.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, testCase := range [...]struct {
		name string
		args []string
	}{
		{name: "missing diff", args: []string{}},
		{name: "unsupported language", args: []string{"--diff", "a.diff", "--lang", "fr"}},
		{name: "malformed pattern", args: []string{"--diff", "a.diff", "--ignore_dir", "scripts/[**/"}},
		{name: "empty command", args: []string{"--diff", "a.diff", "--shellcheck_cmd", ""}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			o := newOptions()
			if err := o.Parse(testCase.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := o.Validate(); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}
