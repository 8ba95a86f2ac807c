package netlist

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	reDropLine   = regexp.MustCompile(`^\+\s*$|^\s*$|^\*`)
	reEOLComment = regexp.MustCompile(`\$.*`)
	reContPrefix = regexp.MustCompile(`^\+\s*`)
	reWhitespace = regexp.MustCompile(`[ \t]+`)
	reAssign     = regexp.MustCompile(` *= *`)
)

// Clean normalizes a raw netlist into one statement per line. The steps run
// in a fixed order; reordering them changes the result (whitespace must not
// be collapsed before quote-enclosed spaces are removed, continuations must
// be merged before per-line rewrites, and so on).
func Clean(text string) string {
	lines := strings.Split(text, "\n")

	// Strip leading whitespace.
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}

	// Drop empty lines, empty continuation lines and full-line comments.
	kept := lines[:0]
	for _, line := range lines {
		if !reDropLine.MatchString(line) {
			kept = append(kept, line)
		}
	}

	// Strip end-of-line comments.
	for i, line := range kept {
		kept[i] = reEOLComment.ReplaceAllString(line, "")
	}

	// Merge continuation lines into the previous logical line.
	merged := make([]string, 0, len(kept))
	for _, line := range kept {
		if strings.HasPrefix(line, "+") {
			if len(merged) == 0 {
				continue
			}
			merged[len(merged)-1] += reContPrefix.ReplaceAllString(line, " ")
			continue
		}
		merged = append(merged, line)
	}

	out := make([]string, 0, len(merged))
	for _, line := range merged {
		// Unify whitespace.
		line = reWhitespace.ReplaceAllString(line, " ")
		// Remove whitespace inside quoted expressions.
		line = removeEnclosedSpace(line)
		// Remove space around assignments.
		line = reAssign.ReplaceAllString(line, "=")
		// Lowercase everything except include paths, which stay
		// case-sensitive.
		if !strings.HasPrefix(strings.ToLower(line), ".include") {
			line = strings.ToLower(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// removeEnclosedSpace drops spaces between matched pairs of single quotes.
// The quote state toggles on every quote character.
func removeEnclosedSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inside := false
	for _, c := range s {
		if c == '\'' {
			inside = !inside
			b.WriteRune(c)
			continue
		}
		if inside && c == ' ' {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ReadNetlist reads a netlist file and normalizes it.
func ReadNetlist(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read netlist: %w", err)
	}
	return Clean(string(data)), nil
}

// WriteNetlist writes netlist text to a file, prefixed with a timestamped
// comment line.
func WriteNetlist(text, path string) error {
	header := fmt.Sprintf("* Netlist written: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	if err := os.WriteFile(path, []byte(header+text), 0o644); err != nil {
		return fmt.Errorf("write netlist: %w", err)
	}
	return nil
}
