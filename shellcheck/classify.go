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
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-enry/go-enry/v2"
	"github.com/golang/glog"
	"golang.org/x/exp/slices"
)

const ShellScriptMIME = "text/x-shellscript"

// mimetype has no shell detector of its own; text files whose shebang enry
// attributes to Shell are reported as ShellScriptMIME.
func init() {
	mimetype.Lookup("text/plain").Extend(hasShellShebang, ShellScriptMIME, ".sh", "text/x-sh", "application/x-shellscript")
}

func hasShellShebang(raw []byte, limit uint32) bool {
	return slices.Contains(enry.GetLanguagesByShebang("", raw, nil), "Shell")
}

// IsShellScript reports whether path is a shell script. Files ending in .sh
// are accepted without being opened, anything else is sniffed for a shell
// shebang. Unreadable files are not shell scripts.
func IsShellScript(path string) bool {
	if filepath.Ext(path) == ".sh" {
		return true
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		glog.V(1).Infof("mimetype.DetectFile(%s): %v", path, err)
		return false
	}
	return mtype.Is(ShellScriptMIME)
}
