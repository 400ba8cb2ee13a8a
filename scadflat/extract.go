package scadflat

import (
	"regexp"
	"strings"
)

var (
	moduleRE = regexp.MustCompile(`^\s*module\s+\w+`)
	varRE    = regexp.MustCompile(`^\s*_[A-Za-z0-9_]+\s*=`)
	funcRE   = regexp.MustCompile(`^\s*function\s+\w+`)
)

// ExtractDefinitions returns the module, function and underscore-variable
// definitions found in code, in source order. This is what a use statement
// imports: definitions only, no top-level geometry statements. Comments and
// anything else at the top level are dropped.
func ExtractDefinitions(code string) []string {
	var defs []string
	lines := strings.Split(code, "\n")
	// terminator so a definition ending at EOF still closes
	lines = append(lines, "")

	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		if line == "" || strings.HasPrefix(line, "//") {
			i++
			continue
		}
		if strings.HasPrefix(line, "/*") {
			for i < len(lines) && !strings.Contains(lines[i], "*/") {
				i++
			}
			i++
			continue
		}

		switch {
		case moduleRE.MatchString(lines[i]):
			var def string
			def, i = scanBraced(lines, i)
			defs = append(defs, def)
		case varRE.MatchString(lines[i]):
			var def string
			def, i = scanAssignment(lines, i)
			defs = append(defs, def)
		case funcRE.MatchString(lines[i]):
			var def string
			def, i = scanFunction(lines, i)
			defs = append(defs, def)
		default:
			i++
		}
	}
	return defs
}

// scanBraced consumes a module definition by balancing braces from the
// first opening brace onward.
func scanBraced(lines []string, i int) (string, int) {
	start := i
	depth, open := 0, false
	for i < len(lines) {
		l := lines[i]
		if !open && strings.Contains(l, "{") {
			open = true
		}
		if open {
			depth += strings.Count(l, "{") - strings.Count(l, "}")
		}
		if open && depth == 0 {
			i++
			break
		}
		i++
	}
	return strings.Join(lines[start:i], "\n"), i
}

// scanAssignment consumes an underscore-variable assignment, possibly
// spanning lines until its brackets close and a semicolon lands. Anonymous
// function assignments take this path too.
func scanAssignment(lines []string, i int) (string, int) {
	def := lines[i]
	if strings.Contains(def, ";") {
		return def, i + 1
	}
	depth := bracketDepth(lines[i])
	i++
	for i < len(lines) && (depth > 0 || !strings.Contains(def, ";")) {
		l := lines[i]
		def += "\n" + l
		depth += bracketDepth(l)
		if depth == 0 && strings.Contains(l, ";") {
			break
		}
		i++
	}
	return def, i + 1
}

// scanFunction consumes a function definition, tracking nesting character
// by character until a top-level semicolon after the = sign.
func scanFunction(lines []string, i int) (string, int) {
	var def strings.Builder
	depth, started := 0, false
	for i < len(lines) {
		l := lines[i]
		def.WriteString(l)
		def.WriteByte('\n')
		if !started && strings.Contains(l, "=") {
			started = true
		}
		for _, c := range l {
			switch c {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			case ';':
				if depth == 0 && started {
					return def.String(), i + 1
				}
			}
		}
		i++
	}
	return def.String(), i
}

func bracketDepth(l string) int {
	return strings.Count(l, "[") + strings.Count(l, "(") -
		strings.Count(l, "]") - strings.Count(l, ")")
}
