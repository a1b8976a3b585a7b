// Package pointio reads and writes points as lines of text, one
// whitespace-separated "x y [z]" triple per line.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pebbe/go-proj-4/proj"
)

// A ParseError reports a malformed input line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errFieldCount = errors.New("want 2 or 3 coordinates")

// Read parses all points from r. Blank lines and lines starting with '#'
// are skipped. A missing z is 0.
func Read(r io.Reader) ([]proj.Point3D, error) {
	var points []proj.Point3D
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return points, nil
}

func parseLine(text string) (proj.Point3D, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return proj.Point3D{}, errFieldCount
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return proj.Point3D{}, err
		}
		c[i] = v
	}
	return proj.Point3D{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Write writes one "x y z" line per point, with precision digits after the
// decimal point.
func Write(w io.Writer, points []proj.Point3D, precision int) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'f', precision, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'f', precision, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Z, 'f', precision, 64))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}
