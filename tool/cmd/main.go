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

package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"naive.systems/shellreview/options"
	"naive.systems/shellreview/review"
	"naive.systems/shellreview/tool"
)

func main() {
	opts := options.Register(flag.CommandLine)
	err := opts.Parse(os.Args[1:])
	defer glog.Flush()
	if err != nil {
		glog.Fatalf("options.Parse: %v", err)
	}
	if err := opts.Validate(); err != nil {
		glog.Fatalf("invalid options: %v", err)
	}
	cmd, err := opts.Command()
	if err != nil {
		glog.Fatal(err)
	}
	err = os.MkdirAll(*opts.ResultsDir, os.ModePerm)
	if err != nil {
		glog.Fatalf("os.MkdirAll: %v", err)
	}

	diffData, err := os.ReadFile(*opts.Diff)
	if err != nil {
		glog.Fatalf("os.ReadFile: %v", err)
	}
	r, err := review.Load(diffData, *opts.SrcDir)
	if err != nil {
		glog.Fatalf("review.Load: %v", err)
	}

	shellCheckTool := tool.NewShellCheckTool(tool.Settings{
		Markdown:       *opts.Markdown,
		Lang:           *opts.Lang,
		Command:        cmd,
		IgnorePatterns: opts.IgnoreDirPatterns,
	})
	summary := tool.Run(shellCheckTool, r)

	err = r.Write(filepath.Join(*opts.ResultsDir, "review.json"))
	if err != nil {
		glog.Fatal(err)
	}
	err = summary.Write(*opts.ResultsDir)
	if err != nil {
		glog.Fatal(err)
	}
}
