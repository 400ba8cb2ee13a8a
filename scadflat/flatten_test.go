package scadflat

import (
	"strings"
	"testing"
	"testing/fstest"
)

func scadTree() fstest.MapFS {
	return fstest.MapFS{
		"lib/utility.scad": {Data: []byte(`// Utility library
include <common/constants.scad>

function utility_function(x) = x * 2;
`)},
		"lib/modules.scad": {Data: []byte(`// Modules library
use <common/shapes.scad>

module test_module() {
    cube([5, 5, 5]);
}

test_module();
`)},
		"lib/common/constants.scad": {Data: []byte(`_PI = 3.14159;
`)},
		"lib/common/shapes.scad": {Data: []byte(`module cube_centered(size) {
    cube(size, center=true);
}

cube_centered([1, 1, 1]);
`)},
	}
}

func TestFlattenInclude(t *testing.T) {
	root := `include <lib/utility.scad>

module root_module() {
    cube([10, 10, 10]);
}
`
	flat, err := Flatten(root, scadTree(), ".")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// BEGIN include <lib/utility.scad>",
		"// END include <lib/utility.scad>",
		// transitively included, resolved relative to lib/
		"// BEGIN include <common/constants.scad>",
		"_PI = 3.14159;",
		"function utility_function(x) = x * 2;",
		"module root_module()",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("flattened output missing %q", want)
		}
	}
	if strings.Contains(flat, "include <lib/utility.scad>") {
		t.Error("include statement survived flattening")
	}
}

func TestFlattenUseImportsDefinitionsOnly(t *testing.T) {
	flat, err := Flatten("use <lib/modules.scad>\n", scadTree(), ".")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// BEGIN use <lib/modules.scad>",
		"module test_module()",
		"module cube_centered(size)",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("flattened output missing %q", want)
		}
	}
	for _, call := range []string{"test_module();", "cube_centered([1, 1, 1]);"} {
		if strings.Contains(flat, call) {
			t.Errorf("top-level call %q leaked through use", call)
		}
	}
}

func TestFlattenDeduplicates(t *testing.T) {
	fsys := scadTree()
	fsys["a.scad"] = &fstest.MapFile{Data: []byte("include <lib/common/constants.scad>\n")}
	root := `include <a.scad>
include <lib/common/constants.scad>
`
	flat, err := Flatten(root, fsys, ".")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(flat, "_PI = 3.14159;"); got != 1 {
		t.Errorf("constants spliced %d times, want 1", got)
	}
	if !strings.Contains(flat, "// SKIPPING <lib/common/constants.scad>") {
		t.Error("repeat include not marked as skipped")
	}
}

func TestFlattenMissingFile(t *testing.T) {
	if _, err := Flatten("include <nope.scad>\n", scadTree(), "."); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFlattenIgnoresIndentedStatements(t *testing.T) {
	root := "echo(\"include <lib/utility.scad>\");\n// include <lib/utility.scad> in a comment\n"
	flat, err := Flatten(root, scadTree(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if flat != root {
		t.Errorf("mid-line references should not resolve:\n%s", flat)
	}
}
