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

package shellcheck

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/golang/glog"
)

// DefaultCommand runs the shellcheck found on PATH.
var DefaultCommand = []string{"shellcheck"}

// ShellCheckError is returned when shellcheck wrote anything to stderr.
type ShellCheckError struct {
	Command string
	Output  string
}

func (e *ShellCheckError) Error() string {
	return fmt.Sprintf("error running shellcheck command line tool %s, command output:\n%s", e.Command, e.Output)
}

// CheckDependencies reports whether the binary of cmd can be found.
func CheckDependencies(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}
	path, err := exec.LookPath(cmd[0])
	if err != nil {
		glog.Warningf("%s not found: %v", cmd[0], err)
		return false
	}
	glog.Infof("using shellcheck at %s", path)
	return true
}

// Run checks sourceFilePath with shellcheck and parses its checkstyle report.
// cmd is the shellcheck binary followed by any extra arguments. Output on
// stderr fails the whole run, whatever the exit code.
func Run(cmd []string, sourceFilePath string) (*Result, error) {
	if len(cmd) == 0 {
		return nil, errors.New("empty shellcheck command")
	}
	args := make([]string, 0, len(cmd)+2)
	args = append(args, cmd[1:]...)
	args = append(args, sourceFilePath, "-f", "checkstyle")
	c := exec.Command(cmd[0], args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	glog.Info("executing: ", c.String())
	err := c.Run()
	if stderr.Len() > 0 {
		return nil, &ShellCheckError{Command: c.String(), Output: stderr.String()}
	}
	if err != nil {
		// shellcheck exits with 1 when it found violations, it's not an error.
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return nil, fmt.Errorf("cmd.Run: %v", err)
		}
		glog.Infof("%s exited with %d", c.String(), exitError.ExitCode())
	}
	return ParseResult(stdout.Bytes(), sourceFilePath)
}
