package elempath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath reports that an expression is not a well-formed element path.
var ErrInvalidPath = errors.New("invalid element path")

func pathErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidPath}, args...)...)
}

// Parse parses an element path expression, as produced by GetExpression.
//
// A step's rank predicate may be omitted, in which case rank 1 is assumed.
// The empty expression denotes the root itself, as does "/" for the
// document node.
func Parse(expr string) (Path, error) {
	var path Path
	r := &pathReader{input: strings.TrimSpace(expr)}
	if r.consume('/') {
		path.Absolute = true
		if r.atEnd() {
			return path, nil
		}
	}
	if r.atEnd() {
		return path, nil
	}
	for {
		step, err := parseStep(r)
		if err != nil {
			return Path{}, err
		}
		path.Steps = append(path.Steps, step)
		if r.atEnd() {
			return path, nil
		}
		if !r.consume('/') {
			return Path{}, pathErrorf("unexpected %q at position %d in %q", r.peek(), r.pos, expr)
		}
		if r.atEnd() {
			return Path{}, pathErrorf("trailing slash in %q", expr)
		}
	}
}

func parseStep(r *pathReader) (Step, error) {
	var step Step
	start := r.pos
	switch {
	case r.consumeString("*[local-name()="):
		name, err := r.readQuoted()
		if err != nil {
			return step, err
		}
		if !r.consume(']') {
			return step, pathErrorf("unterminated local-name predicate at position %d", start)
		}
		step.Kind = NamespacedStep
		step.Local = name
	case r.consumeString("*[name()="):
		name, err := r.readQuoted()
		if err != nil {
			return step, err
		}
		if !r.consume(']') {
			return step, pathErrorf("unterminated name predicate at position %d", start)
		}
		step.Local = name
	case r.consumeString("text()"):
		step.Kind = TextStep
	default:
		name := r.readName()
		if name == "" {
			return step, pathErrorf("step is missing a node test at position %d", start)
		}
		step.Local = name
	}
	rank, err := r.readRank()
	if err != nil {
		return step, err
	}
	step.Rank = rank
	return step, nil
}

// pathReader is a cursor over an expression.
type pathReader struct {
	input string
	pos   int
}

func (r *pathReader) atEnd() bool {
	return r.pos >= len(r.input)
}

func (r *pathReader) peek() byte {
	if r.atEnd() {
		return 0
	}
	return r.input[r.pos]
}

func (r *pathReader) consume(ch byte) bool {
	if r.peek() == ch && !r.atEnd() {
		r.pos++
		return true
	}
	return false
}

func (r *pathReader) consumeString(s string) bool {
	if strings.HasPrefix(r.input[r.pos:], s) {
		r.pos += len(s)
		return true
	}
	return false
}

// readName reads a bare tag name, which ends at a slash or an opening bracket.
func (r *pathReader) readName() string {
	start := r.pos
	for !r.atEnd() {
		ch := r.input[r.pos]
		if ch == '/' || ch == '[' || ch == ']' || ch == '\'' || ch == '"' || ch == '*' {
			break
		}
		r.pos++
	}
	return r.input[start:r.pos]
}

func (r *pathReader) readQuoted() (string, error) {
	q := r.peek()
	if q != '\'' && q != '"' {
		return "", pathErrorf("expected quoted name at position %d", r.pos)
	}
	r.pos++
	end := strings.IndexByte(r.input[r.pos:], q)
	if end < 0 {
		return "", pathErrorf("unterminated quote at position %d", r.pos-1)
	}
	name := r.input[r.pos : r.pos+end]
	r.pos += end + 1
	if name == "" {
		return "", pathErrorf("empty local name at position %d", r.pos)
	}
	return name, nil
}

// readRank reads an optional rank predicate "[k]", k ≥ 1.
func (r *pathReader) readRank() (int, error) {
	if !r.consume('[') {
		return 1, nil
	}
	end := strings.IndexByte(r.input[r.pos:], ']')
	if end < 0 {
		return 0, pathErrorf("unterminated rank predicate at position %d", r.pos-1)
	}
	k, err := strconv.Atoi(r.input[r.pos : r.pos+end])
	if err != nil || k < 1 {
		return 0, pathErrorf("rank must be a positive integer, is %q", r.input[r.pos:r.pos+end])
	}
	r.pos += end + 1
	return k, nil
}
