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

package review

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"naive.systems/shellreview/atomic"
	"naive.systems/shellreview/diff"
)

type TextType string

const (
	PlainText TextType = "plain"
	Markdown  TextType = "markdown"
)

type Comment struct {
	ID          string   `json:"id"`
	FileID      string   `json:"filediff_id"`
	File        string   `json:"file"`
	FirstLine   int      `json:"first_line"`
	NumLines    int      `json:"num_lines"`
	Text        string   `json:"text"`
	IssueOpened bool     `json:"issue_opened"`
	TextType    TextType `json:"text_type"`
}

// Review collects the comments tools leave on the files of one diff.
type Review struct {
	ID              string    `json:"id"`
	BodyTop         string    `json:"body_top"`
	BodyTopTextType TextType  `json:"body_top_text_type"`
	Comments        []Comment `json:"comments"`

	Files []*File `json:"-"`
}

func New() *Review {
	return &Review{
		ID:              uuid.NewString(),
		BodyTopTextType: PlainText,
		Comments:        []Comment{},
	}
}

// Load creates a review with one File per file the diff adds or modifies.
// Original contents are read from srcDir.
func Load(diffData []byte, srcDir string) (*Review, error) {
	patch, err := diff.Parse(diffData)
	if err != nil {
		return nil, fmt.Errorf("diff.Parse: %v", err)
	}
	r := New()
	for _, f := range patch.Files {
		if f.IsDeletion() {
			glog.V(1).Infof("skipping deleted file %s", f.OldName)
			continue
		}
		r.AddFile(f, srcDir)
	}
	return r, nil
}

func (r *Review) AddFile(d *diff.File, srcDir string) *File {
	f := &File{
		ID:         uuid.NewString(),
		SourceFile: d.OldName,
		DestFile:   d.NewName,
		review:     r,
		srcDir:     srcDir,
		diff:       d,
	}
	r.Files = append(r.Files, f)
	return f
}

// Write stores the review as JSON at path.
func (r *Review) Write(path string) error {
	err := atomic.WriteJSON(path, r)
	if err != nil {
		return fmt.Errorf("atomic.WriteJSON: %v", err)
	}
	return nil
}

// Cleanup removes every patched file handed out by the review's files.
func (r *Review) Cleanup() {
	for _, f := range r.Files {
		f.Cleanup()
	}
}

// File is one file of the reviewed diff.
type File struct {
	ID         string
	SourceFile string
	DestFile   string

	review       *Review
	srcDir       string
	diff         *diff.File
	patchedPaths []string
}

// LocalPath is where the destination file lives under the source directory.
func (f *File) LocalPath() string {
	return filepath.Join(f.srcDir, f.DestFile)
}

// Comment adds a comment anchored at firstLine of the patched file.
func (f *File) Comment(text string, firstLine, numLines int, issue bool, textType TextType) {
	id, err := uuid.NewRandom()
	if err != nil {
		glog.Warningf("uuid.NewRandom: %v", err)
	}
	c := Comment{
		FileID:      f.ID,
		File:        f.DestFile,
		FirstLine:   firstLine,
		NumLines:    numLines,
		Text:        text,
		IssueOpened: issue,
		TextType:    textType,
	}
	if err == nil {
		c.ID = id.String()
	}
	f.review.Comments = append(f.review.Comments, c)
}

// GetPatchedFilePath writes the file as it is after the diff into a new
// temporary file and returns its path. Every call creates another file.
func (f *File) GetPatchedFilePath() (string, error) {
	var original []byte
	if !f.diff.IsAddition() {
		var err error
		original, err = os.ReadFile(filepath.Join(f.srcDir, f.SourceFile))
		if err != nil {
			return "", fmt.Errorf("failed to read original of %s: %v", f.DestFile, err)
		}
	}
	patched, err := diff.Apply(original, f.diff)
	if err != nil {
		return "", fmt.Errorf("diff.Apply: %v", err)
	}
	tmp, err := os.CreateTemp("", "patched-*-"+filepath.Base(f.DestFile))
	if err != nil {
		return "", fmt.Errorf("os.CreateTemp: %v", err)
	}
	f.patchedPaths = append(f.patchedPaths, tmp.Name())
	_, err = tmp.Write(patched)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write patched file %s: %v", tmp.Name(), err)
	}
	return tmp.Name(), nil
}

func (f *File) Cleanup() {
	for _, p := range f.patchedPaths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			glog.Warningf("failed to remove %s: %v", p, err)
		}
	}
	f.patchedPaths = nil
}
