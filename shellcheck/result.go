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
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidResult is returned when shellcheck output does not have the
// expected checkstyle shape.
var ErrInvalidResult = errors.New("invalid shellcheck result")

type CheckstyleXMLError struct {
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

type CheckstyleXMLFile struct {
	Name   string               `xml:"name,attr"`
	Errors []CheckstyleXMLError `xml:"error"`
}

type CheckstyleXMLReport struct {
	XMLName xml.Name            `xml:"checkstyle"`
	Version string              `xml:"version,attr"`
	Files   []CheckstyleXMLFile `xml:"file"`
}

// Result holds the violations shellcheck reported for one source file.
type Result struct {
	SourceFilePath string
	Violations     *ViolationSet
}

func NewResult(sourceFilePath string, violations ...Violation) *Result {
	return &Result{
		SourceFilePath: sourceFilePath,
		Violations:     NewViolationSetFromList(violations),
	}
}

// ParseResult reads the checkstyle report shellcheck printed for
// sourceFilePath. The report must contain exactly one <file> element and its
// name must be sourceFilePath.
func ParseResult(xmlData []byte, sourceFilePath string) (*Result, error) {
	report := CheckstyleXMLReport{}
	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	err := decoder.Decode(&report)
	if err != nil {
		return nil, fmt.Errorf("%w: unmarshal checkstyle xml: %v", ErrInvalidResult, err)
	}
	if len(report.Files) != 1 {
		return nil, fmt.Errorf("%w: result should contain results for one and only one file, got %d", ErrInvalidResult, len(report.Files))
	}
	file := report.Files[0]
	if file.Name != sourceFilePath {
		return nil, fmt.Errorf("%w: result does not contain results for file %s", ErrInvalidResult, sourceFilePath)
	}
	result := NewResult(file.Name)
	for _, e := range file.Errors {
		line, err := strconv.Atoi(strings.TrimSpace(e.Line))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid line %q in %s: %v", ErrInvalidResult, e.Line, sourceFilePath, err)
		}
		if line < 1 {
			return nil, fmt.Errorf("%w: line %d in %s is not positive", ErrInvalidResult, line, sourceFilePath)
		}
		result.Violations.Add(Violation{
			Line: line,
			Text: e.Message,
			Rule: RuleFromSource(e.Source),
		})
	}
	return result, nil
}

// RuleFromSource extracts the rule id from a checkstyle source attribute,
// e.g. "ShellCheck.SC2086" -> "SC2086".
func RuleFromSource(source string) string {
	return source[strings.LastIndex(source, ".")+1:]
}
