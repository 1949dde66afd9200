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
	"errors"
	"testing"
)

func TestMatchIgnorePatterns(t *testing.T) {
	for _, testCase := range [...]struct {
		name           string
		ignorePatterns []string
		filePath       string
		expectedResult bool
		expectedErr    error
	}{
		{
			name:           "match file in the same folder",
			ignorePatterns: []string{"vendor/**/*"},
			filePath:       "vendor/install.sh",
			expectedResult: true,
		},
		{
			name:           "match file in the recursive folder",
			ignorePatterns: []string{"vendor/**/*.sh"},
			filePath:       "vendor/tools/ci/install.sh",
			expectedResult: true,
		},
		{
			name:           "no matched file",
			ignorePatterns: []string{"vendor/**/*"},
			filePath:       "scripts/install.sh",
			expectedResult: false,
		},
		{
			name:           "no patterns",
			ignorePatterns: nil,
			filePath:       "scripts/install.sh",
			expectedResult: false,
		},
		{
			name:           "invalid pattern",
			ignorePatterns: []string{"scripts/[**/"},
			filePath:       "scripts/install.sh",
			expectedResult: false,
			expectedErr:    errors.New("malformed ignore_dir pattern scripts/[**/"),
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			matched, err := MatchIgnorePatterns(testCase.ignorePatterns, testCase.filePath)
			if err != nil || testCase.expectedErr != nil {
				if err == nil || testCase.expectedErr == nil || err.Error() != testCase.expectedErr.Error() {
					t.Errorf("unexpected result for test %v. error: %v. expected: %v.", testCase.name, err, testCase.expectedErr)
				}
			} else if matched != testCase.expectedResult {
				t.Errorf("unexpected result for test %v. result: %v. expected: %v.", testCase.name, matched, testCase.expectedResult)
			}
		})
	}
}

func TestValidatePatterns(t *testing.T) {
	if err := ValidatePatterns([]string{"vendor/**", "*.bash"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePatterns([]string{"vendor/**", "scripts/[**/"}); err == nil {
		t.Errorf("expected an error")
	}
}
