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

package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
)

// MatchIgnorePatterns reports whether filePath matches any of the doublestar
// patterns.
func MatchIgnorePatterns(ignorePatterns []string, filePath string) (bool, error) {
	for _, ignorePattern := range ignorePatterns {
		matched, err := doublestar.Match(ignorePattern, filePath)
		if err != nil {
			return false, fmt.Errorf("malformed ignore_dir pattern %s", ignorePattern)
		}
		if matched {
			glog.Infof("file %s ignored due to pattern %s", filePath, ignorePattern)
			return true, nil
		}
	}
	return false, nil
}

// ValidatePatterns returns an error for the first malformed pattern.
func ValidatePatterns(ignorePatterns []string) error {
	for _, ignorePattern := range ignorePatterns {
		if !doublestar.ValidatePattern(ignorePattern) {
			return fmt.Errorf("malformed ignore_dir pattern %s", ignorePattern)
		}
	}
	return nil
}
