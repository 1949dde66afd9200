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

package diff

import (
	"errors"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

type Hunk struct {
	OldPos, OldLines, NewPos, NewLines int
	// Body holds the hunk lines, each prefixed with ' ', '-' or '+'.
	Body []byte
}

type File struct {
	NewName string
	OldName string
	Hunks   []*Hunk
}

type Patch struct {
	Files []*File
}

func (f *File) IsAddition() bool {
	return f.OldName == "" && f.NewName != ""
}

func (f *File) IsDeletion() bool {
	return f.NewName == ""
}

/*
Parse parses a unified diff, possibly covering several files, into a patch.

For a particular file in the diff, there are three cases to consider:

1. File modification

	--- a/scripts/deploy.sh
	+++ b/scripts/deploy.sh
	@@ -2,3 +2,3 @@

Both names are set, without their "a/" and "b/" prefixes.

2. File addition

	--- /dev/null
	+++ b/scripts/setup.sh
	@@ -0,0 +1,27 @@

OldName is set to the empty string in this case.

3. File deletion

	--- a/scripts/old.sh
	+++ /dev/null
	@@ -1 +0,0 @@

NewName is set to the empty string in this case.
*/
func Parse(data []byte) (*Patch, error) {
	fileDiffs, err := godiff.ParseMultiFileDiff(data)
	if err != nil {
		return nil, fmt.Errorf("diff.ParseMultiFileDiff: %v", err)
	}
	var p Patch
	for _, fd := range fileDiffs {
		f := &File{
			OldName: trimName(fd.OrigName, "a/"),
			NewName: trimName(fd.NewName, "b/"),
		}
		if fd.OrigName == "" && fd.NewName == "" {
			// Hunk-less diffs (mode changes, binary files) only carry names in
			// the extended header.
			f.OldName, f.NewName = namesFromExtended(fd.Extended)
			if f.NewName == "" {
				continue
			}
		}
		for _, h := range fd.Hunks {
			f.Hunks = append(f.Hunks, &Hunk{
				OldPos:   int(h.OrigStartLine),
				OldLines: int(h.OrigLines),
				NewPos:   int(h.NewStartLine),
				NewLines: int(h.NewLines),
				Body:     h.Body,
			})
		}
		p.Files = append(p.Files, f)
	}
	return &p, nil
}

func trimName(name, prefix string) string {
	if name == devNull {
		return ""
	}
	return strings.TrimPrefix(name, prefix)
}

func namesFromExtended(extended []string) (string, string) {
	for _, line := range extended {
		if !strings.HasPrefix(line, "diff --git ") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "diff --git "))
		if len(fields) != 2 {
			return "", ""
		}
		return trimName(fields[0], "a/"), trimName(fields[1], "b/")
	}
	return "", ""
}

// Apply returns the content of f after its hunks are applied to original.
// Context and removed lines must match original.
func Apply(original []byte, f *File) ([]byte, error) {
	if f.IsDeletion() {
		return nil, errors.New("cannot apply a file deletion")
	}
	var origLines []string
	if !f.IsAddition() {
		origLines = splitLines(string(original))
	}
	var out strings.Builder
	origIdx := 0
	for _, h := range f.Hunks {
		hunkStart := h.OldPos - 1
		if h.OldLines == 0 {
			// pure insertion after line OldPos
			hunkStart = h.OldPos
		}
		if hunkStart < origIdx || hunkStart > len(origLines) {
			return nil, fmt.Errorf("hunk @@ -%d,%d +%d,%d @@ does not fit %s", h.OldPos, h.OldLines, h.NewPos, h.NewLines, f.NewName)
		}
		for ; origIdx < hunkStart; origIdx++ {
			out.WriteString(origLines[origIdx])
		}
		for _, line := range splitLines(string(h.Body)) {
			if line == "" || line[0] == '\\' {
				continue
			}
			if trimEOL(line) == "" {
				// empty context line with its leading space stripped
				line = " " + line
			}
			op, content := line[0], line[1:]
			switch op {
			case ' ', '-':
				if origIdx >= len(origLines) || trimEOL(origLines[origIdx]) != trimEOL(content) {
					return nil, fmt.Errorf("%s: line %d does not match the diff", f.NewName, origIdx+1)
				}
				if op == ' ' {
					out.WriteString(origLines[origIdx])
				}
				origIdx++
			case '+':
				out.WriteString(trimEOL(content) + "\n")
			default:
				return nil, fmt.Errorf("%s: unexpected hunk line %q", f.NewName, line)
			}
		}
	}
	for ; origIdx < len(origLines); origIdx++ {
		out.WriteString(origLines[origIdx])
	}
	return []byte(out.String()), nil
}

// splitLines splits s after each newline; the last line may lack one.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimEOL(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}
