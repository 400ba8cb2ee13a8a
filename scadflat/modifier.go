package scadflat

import (
	"io/fs"
	"strings"
)

// ModifierDir is where modifier snippet files live, relative to the
// flattened project's filesystem root.
const ModifierDir = "src/modifiers"

// ApplyModifiers swaps out marked sections of content. A section is the text
// between two identical markers of the form
//
//	/* MODIFIER name */
//
// and mods maps a section name to the snippet file (under ModifierDir in
// fsys) whose content replaces it, markers kept. Sections without a paired
// marker and names without a readable snippet file are left untouched.
func ApplyModifiers(content string, mods map[string]string, fsys fs.FS) string {
	for name, file := range mods {
		marker := "/* MODIFIER " + name + " */"
		first := strings.Index(content, marker)
		if first < 0 {
			continue
		}
		rest := strings.Index(content[first+len(marker):], marker)
		if rest < 0 {
			continue
		}
		end := first + len(marker) + rest + len(marker)
		snippet, err := fs.ReadFile(fsys, ModifierDir+"/"+file)
		if err != nil {
			continue
		}
		section := content[first:end]
		replacement := marker + "\n" + string(snippet) + "\n" + marker
		content = strings.ReplaceAll(content, section, replacement)
	}
	return content
}
