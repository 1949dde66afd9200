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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const WikiURL = "https://github.com/koalaman/shellcheck/wiki/"

// Violation is a single shellcheck finding. Two violations with the same
// line, text and rule are the same violation.
type Violation struct {
	Line int
	Text string
	Rule string
}

func (v Violation) URL() string {
	return WikiURL + v.Rule
}

func (v Violation) String() string {
	return fmt.Sprintf("Violation(line=%d, text='%s', rule='%s')", v.Line, v.Text, v.Rule)
}

// ViolationSet keeps unique violations in the order they were added.
type ViolationSet struct {
	violations []Violation
	stored     map[Violation]struct{}
}

func NewViolationSet() *ViolationSet {
	return &ViolationSet{stored: make(map[Violation]struct{})}
}

func NewViolationSetFromList(list []Violation) *ViolationSet {
	set := NewViolationSet()
	for _, v := range list {
		set.Add(v)
	}
	return set
}

// Add reports whether v was not in the set before.
func (s *ViolationSet) Add(v Violation) bool {
	if _, reported := s.stored[v]; reported {
		return false
	}
	s.stored[v] = struct{}{}
	s.violations = append(s.violations, v)
	return true
}

func (s *ViolationSet) Contains(v Violation) bool {
	_, ok := s.stored[v]
	return ok
}

func (s *ViolationSet) Len() int {
	return len(s.violations)
}

// List returns the violations in insertion order.
func (s *ViolationSet) List() []Violation {
	return slices.Clone(s.violations)
}

// Sorted returns the violations ordered by line, then rule, then text.
func (s *ViolationSet) Sorted() []Violation {
	sorted := s.List()
	slices.SortFunc(sorted, func(a, b Violation) bool {
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return strings.Compare(a.Text, b.Text) < 0
	})
	return sorted
}
