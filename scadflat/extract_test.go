package scadflat

import (
	"strings"
	"testing"
)

const sampleDefs = `// Sample module
module test_module() {
    cube([10, 10, 10]);
}

// Function definition
function test_function(x) = x * 2;

/* block comment
   spanning lines */

// Internal variable
_internal_var = 42;

// Complex module with nested braces
module complex_module() {
    if (true) {
        cube([5, 5, 5]);
    } else {
        sphere(5);
    }
}

// Multi-line function
function complex_function(a, b, c) =
    let(
        x = a * 2,
        y = b * 3
    )
    x + y + c;

// Call modules - should not be extracted
test_module();
`

func TestExtractDefinitions(t *testing.T) {
	defs := ExtractDefinitions(sampleDefs)
	if len(defs) != 5 {
		t.Fatalf("extracted %d definitions, want 5: %q", len(defs), defs)
	}
	joined := strings.Join(defs, "\n")
	for _, want := range []string{
		"module test_module()",
		"function test_function(x) = x * 2;",
		"_internal_var = 42;",
		"module complex_module()",
		"function complex_function(a, b, c)",
		"x + y + c;",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("definitions missing %q", want)
		}
	}
	if strings.Contains(joined, "test_module();") {
		t.Error("top-level call was extracted")
	}
	if strings.Contains(joined, "block comment") {
		t.Error("block comment was extracted")
	}
}

func TestExtractNestedBraces(t *testing.T) {
	defs := ExtractDefinitions(sampleDefs)
	var complex string
	for _, d := range defs {
		if strings.Contains(d, "complex_module") {
			complex = d
		}
	}
	if complex == "" {
		t.Fatal("complex_module not extracted")
	}
	for _, want := range []string{"if (true)", "sphere(5);"} {
		if !strings.Contains(complex, want) {
			t.Errorf("complex_module body missing %q", want)
		}
	}
	if strings.Count(complex, "{") != strings.Count(complex, "}") {
		t.Error("extracted module has unbalanced braces")
	}
}

func TestExtractMultilineVariable(t *testing.T) {
	code := `_corners = [
    [0, 0],
    [1, 0],
    [1, 1]
];
union();
`
	defs := ExtractDefinitions(code)
	if len(defs) != 1 {
		t.Fatalf("extracted %d definitions, want 1: %q", len(defs), defs)
	}
	if !strings.Contains(defs[0], "[1, 1]") || !strings.Contains(defs[0], ";") {
		t.Errorf("variable body truncated: %q", defs[0])
	}
}

func TestExtractEmpty(t *testing.T) {
	if defs := ExtractDefinitions("cube([1, 1, 1]);\n"); len(defs) != 0 {
		t.Errorf("extracted %q from pure geometry", defs)
	}
}
