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

package tool

import (
	"fmt"

	"golang.org/x/text/message"
	"naive.systems/shellreview/i18n"
	"naive.systems/shellreview/review"
	"naive.systems/shellreview/shellcheck"
)

// CommentTarget receives the comments of one file.
type CommentTarget interface {
	Comment(text string, firstLine, numLines int, issue bool, textType review.TextType)
}

// CommentFormat decides how a violation is rendered into comment text.
type CommentFormat struct {
	markdown bool
	printer  *message.Printer
}

// PlainFormat renders "<rule>: <text>" followed by a localised link line.
func PlainFormat(lang string) CommentFormat {
	return CommentFormat{printer: i18n.GetPrinter(lang)}
}

// MarkdownFormat renders "[<rule>](<url>): <text>".
func MarkdownFormat() CommentFormat {
	return CommentFormat{markdown: true}
}

func (c CommentFormat) TextType() review.TextType {
	if c.markdown {
		return review.Markdown
	}
	return review.PlainText
}

func (c CommentFormat) Text(v shellcheck.Violation) string {
	if c.markdown {
		return fmt.Sprintf("[%s](%s): %s", v.Rule, v.URL(), v.Text)
	}
	printer := c.printer
	if printer == nil {
		printer = i18n.GetPrinter(i18n.DefaultLang)
	}
	return printer.Sprintf(i18n.PlainCommentFormat, v.Rule, v.Text, v.URL())
}

// PostComments leaves one single-line comment per violation, in the order
// given.
func PostComments(violations []shellcheck.Violation, target CommentTarget, format CommentFormat) {
	for _, v := range violations {
		target.Comment(format.Text(v), v.Line, 1, false, format.TextType())
	}
}
