// Package scadflat flattens an OpenSCAD source tree into one distributable
// file. include statements splice the referenced file in whole, use
// statements import only its module, function and underscore-variable
// definitions, and repeated references collapse into a skip marker so each
// file lands in the output once.
package scadflat

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
)

// A reference must start its line and name a .scad file.
var stmtRE = regexp.MustCompile(`(?m)^\s*(use|include)\s*<([^>]+\.scad)>`)

// Flatten resolves the include/use statements of content against fsys,
// recursively. dir is the directory referenced filenames are relative to,
// "." for the filesystem root. Referencing a missing file is an error.
func Flatten(content string, fsys fs.FS, dir string) (string, error) {
	return flatten(content, fsys, dir, map[string]bool{})
}

func flatten(content string, fsys fs.FS, dir string, seen map[string]bool) (string, error) {
	flat := content
	for _, m := range stmtRE.FindAllStringSubmatch(content, -1) {
		stmt, filename := m[1], m[2]
		ref := stmt + " <" + filename + ">"
		filepath := path.Join(dir, filename)
		if seen[filepath] {
			flat = strings.ReplaceAll(flat, ref, skipBanner(filename))
			continue
		}
		raw, err := fs.ReadFile(fsys, filepath)
		if err != nil {
			return "", fmt.Errorf("scadflat: %s: %w", ref, err)
		}
		seen[filepath] = true
		inner, err := flatten(string(raw), fsys, path.Dir(filepath), seen)
		if err != nil {
			return "", err
		}
		if stmt == "use" {
			inner = strings.Join(ExtractDefinitions(inner), "\n\n")
		}
		flat = strings.ReplaceAll(flat, ref, banner(stmt, filename, inner))
	}
	return flat, nil
}

func skipBanner(filename string) string {
	return fmt.Sprintf("// --------\n// SKIPPING <%s>\n// --------\n", filename)
}

func banner(stmt, filename, content string) string {
	return fmt.Sprintf("// -----\n// BEGIN %[1]s <%[2]s>\n// -----\n%[3]s\n// ---\n// END %[1]s <%[2]s>\n// ---\n",
		stmt, filename, content)
}
