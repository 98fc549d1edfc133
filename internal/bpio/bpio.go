// Package bpio implements the external text/JSON interfaces of the
// optimizer: the line-oriented .bp2d input format and the documented
// solution JSON output format. Parsing fails fast and names the offending
// line/row rather than collecting partial results.
package bpio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kdriggs/binpack2d/internal/model"
)

// Problem is the parsed contents of a .bp2d file: bin dimensions plus the
// item multiset to pack into bins of that size.
type Problem struct {
	BinWidth  int32
	BinHeight int32
	Items     []model.Item
}

// ReadBP2D parses a .bp2d file at path. Lines whose first whitespace-
// separated token is BIN_WIDTH:, BIN_HEIGHT:, or ITEMS are headers; every
// other non-empty line must hold exactly three whitespace-separated
// integers (id, width, height). Parse errors name the offending line.
func ReadBP2D(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, fmt.Errorf("bpio: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return ParseBP2D(f)
}

// ParseBP2D parses .bp2d content from r, per the format documented for
// ReadBP2D. Exposed separately so callers can parse in-memory content
// (tests, round-trip checks) without touching the filesystem.
func ParseBP2D(r io.Reader) (Problem, error) {
	var problem Problem
	haveWidth, haveHeight := false, false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.TrimSuffix(fields[0], ":") {
		case "BIN_WIDTH":
			v, err := parseHeaderInt(fields, lineNum, "BIN_WIDTH")
			if err != nil {
				return Problem{}, err
			}
			problem.BinWidth = v
			haveWidth = true
		case "BIN_HEIGHT":
			v, err := parseHeaderInt(fields, lineNum, "BIN_HEIGHT")
			if err != nil {
				return Problem{}, err
			}
			problem.BinHeight = v
			haveHeight = true
		case "ITEMS":
			// Marker line only; item rows follow.
		default:
			if len(fields) != 3 {
				return Problem{}, fmt.Errorf("bpio: line %d: expected 3 fields (id width height), got %d", lineNum, len(fields))
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return Problem{}, fmt.Errorf("bpio: line %d: invalid id %q: %w", lineNum, fields[0], err)
			}
			width, err := strconv.Atoi(fields[1])
			if err != nil {
				return Problem{}, fmt.Errorf("bpio: line %d: invalid width %q: %w", lineNum, fields[1], err)
			}
			height, err := strconv.Atoi(fields[2])
			if err != nil {
				return Problem{}, fmt.Errorf("bpio: line %d: invalid height %q: %w", lineNum, fields[2], err)
			}
			if width <= 0 || height <= 0 {
				return Problem{}, fmt.Errorf("bpio: line %d: width and height must be positive, got %dx%d", lineNum, width, height)
			}
			problem.Items = append(problem.Items, model.NewItem(int32(id), int32(width), int32(height)))
		}
	}
	if err := scanner.Err(); err != nil {
		return Problem{}, fmt.Errorf("bpio: reading input: %w", err)
	}
	if !haveWidth || !haveHeight {
		return Problem{}, fmt.Errorf("bpio: missing BIN_WIDTH or BIN_HEIGHT header")
	}
	return problem, nil
}

func parseHeaderInt(fields []string, lineNum int, name string) (int32, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("bpio: line %d: %s header needs exactly one value", lineNum, name)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("bpio: line %d: invalid %s value %q: %w", lineNum, name, fields[1], err)
	}
	return int32(v), nil
}

// WriteBP2D serializes a problem back to the .bp2d text format. Not part of
// the documented interface's primary flow, but symmetric with ReadBP2D so
// a solve's input can be echoed alongside its solution for audit/round-trip
// purposes (see RunRecord.InputPath).
func WriteBP2D(w io.Writer, problem Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "BIN_WIDTH: %d\n", problem.BinWidth)
	fmt.Fprintf(bw, "BIN_HEIGHT: %d\n", problem.BinHeight)
	fmt.Fprintln(bw, "ITEMS")
	for _, it := range problem.Items {
		fmt.Fprintf(bw, "%d %d %d\n", it.ID, it.Width, it.Height)
	}
	return bw.Flush()
}

// WriteSolution serializes sol to path in the documented output JSON
// format.
func WriteSolution(path string, sol model.Solution) error {
	data, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return fmt.Errorf("bpio: marshal solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("bpio: write %s: %w", path, err)
	}
	return nil
}

// ReadSolution parses a solution JSON document from path. Provided for
// symmetry and for tooling/tests that need to verify a written solution.
func ReadSolution(path string) (model.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bpio: cannot open %s: %w", path, err)
	}
	var sol model.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, fmt.Errorf("bpio: invalid solution JSON in %s: %w", path, err)
	}
	return sol, nil
}
