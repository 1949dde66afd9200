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

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLang = "en"

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

const (
	PlainCommentFormat = "%s: %s\n\nMore info: %s"
	MarkdownLabel      = "Enable Markdown"
	MarkdownHelpText   = "Allow ReviewBot to use Markdown in the review body and for comments."
)

func init() {
	message.SetString(language.Chinese, PlainCommentFormat, "%s: %s\n\n更多信息: %s")
	message.SetString(language.Chinese, MarkdownLabel, "启用 Markdown")
	message.SetString(language.Chinese, MarkdownHelpText, "允许 ReviewBot 在评审正文和评论中使用 Markdown。")
}

func IsSupported(lang string) bool {
	_, exist := languageMap[lang]
	return exist
}

// GetPrinter falls back to English for unknown languages.
func GetPrinter(lang string) *message.Printer {
	langTag, exist := languageMap[lang]
	if !exist {
		langTag = languageMap[DefaultLang]
	}
	return message.NewPrinter(langTag)
}
