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
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"gopkg.in/yaml.v2"
	"naive.systems/shellreview/filter"
	"naive.systems/shellreview/i18n"
)

type ArrayFlags []string

func (i *ArrayFlags) String() string {
	return strings.Join(*i, ",")
}

func (i *ArrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

type Options struct {
	Config            *string
	Diff              *string
	SrcDir            *string
	ResultsDir        *string
	ShellCheckCmd     *string
	Markdown          *bool
	Lang              *string
	IgnoreDirPatterns ArrayFlags

	flags *flag.FlagSet
}

// FileConfig is the YAML form of the options. Values in the file are used
// for flags that were not given on the command line.
type FileConfig struct {
	Diff          string   `yaml:"diff"`
	SrcDir        string   `yaml:"src_dir"`
	ResultsDir    string   `yaml:"results_dir"`
	ShellCheckCmd string   `yaml:"shellcheck_cmd"`
	Markdown      *bool    `yaml:"markdown"`
	Lang          string   `yaml:"lang"`
	IgnoreDir     []string `yaml:"ignore_dir"`
}

func Register(fs *flag.FlagSet) *Options {
	o := &Options{flags: fs}
	o.Config = fs.String("config", "", "Path to a YAML file with default values for the other flags")
	o.Diff = fs.String("diff", "", "Path to the unified diff under review")
	o.SrcDir = fs.String("src_dir", ".", "Directory holding the files before the diff is applied")
	o.ResultsDir = fs.String("results_dir", "/output/", "Directory where review.json and summary.json are written")
	o.ShellCheckCmd = fs.String("shellcheck_cmd", "shellcheck", "ShellCheck binary, optionally followed by extra arguments")
	o.Markdown = fs.Bool("markdown", false, i18n.MarkdownHelpText)
	o.Lang = fs.String("lang", i18n.DefaultLang, "Language of the comments, en or zh")
	fs.Var(&o.IgnoreDirPatterns, "ignore_dir", "Doublestar pattern of files that will be ignored, can be repeated")
	return o
}

// Parse parses args and then fills unset flags from the config file, if any.
func (o *Options) Parse(args []string) error {
	if err := o.flags.Parse(args); err != nil {
		return err
	}
	if *o.Config == "" {
		return nil
	}
	cfg, err := LoadConfigFile(*o.Config)
	if err != nil {
		return err
	}
	o.ApplyConfig(cfg)
	return nil
}

func LoadConfigFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %v", err)
	}
	cfg := &FileConfig{}
	err = yaml.UnmarshalStrict(content, cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml.UnmarshalStrict(%s): %v", path, err)
	}
	return cfg, nil
}

func (o *Options) ApplyConfig(cfg *FileConfig) {
	set := map[string]bool{}
	o.flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	setString := func(name string, dst *string, value string) {
		if !set[name] && value != "" {
			*dst = value
		}
	}
	setString("diff", o.Diff, cfg.Diff)
	setString("src_dir", o.SrcDir, cfg.SrcDir)
	setString("results_dir", o.ResultsDir, cfg.ResultsDir)
	setString("shellcheck_cmd", o.ShellCheckCmd, cfg.ShellCheckCmd)
	setString("lang", o.Lang, cfg.Lang)
	if !set["markdown"] && cfg.Markdown != nil {
		*o.Markdown = *cfg.Markdown
	}
	if !set["ignore_dir"] {
		o.IgnoreDirPatterns = append(o.IgnoreDirPatterns, cfg.IgnoreDir...)
	}
}

// Command splits the shellcheck command line the way a shell would.
func (o *Options) Command() ([]string, error) {
	cmd, err := shlex.Split(*o.ShellCheckCmd)
	if err != nil {
		return nil, fmt.Errorf("shlex.Split(%s): %v", *o.ShellCheckCmd, err)
	}
	if len(cmd) == 0 {
		return nil, errors.New("empty shellcheck_cmd")
	}
	return cmd, nil
}

func (o *Options) Validate() error {
	if *o.Diff == "" {
		return errors.New("--diff is required")
	}
	if !i18n.IsSupported(*o.Lang) {
		return fmt.Errorf("unsupported language: %s", *o.Lang)
	}
	if _, err := o.Command(); err != nil {
		return err
	}
	return filter.ValidatePatterns(o.IgnoreDirPatterns)
}
