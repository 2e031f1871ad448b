package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
)

// ParseText parses the plain-text pack format:
//
//	Name: <pack name>
//	Levels: <count>
//
//	w: <W>, h: <H>[, wrap]
//	<H rows of exactly W symbols>
//
// Levels repeat, separated by blank lines. The Name header is optional; the
// caller falls back to the file name. The returned pack has no ID.
func ParseText(data []byte) (*engine.Pack, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	pack := &engine.Pack{}

	line := 0
	declared := -1
	levelIdx := 0

	next := func() (string, bool) {
		for sc.Scan() {
			line++
			s := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(s) == "" {
				continue
			}
			return s, true
		}
		return "", false
	}

	for {
		s, ok := next()
		if !ok {
			break
		}

		switch {
		case strings.HasPrefix(s, "Name:"):
			pack.Name = strings.TrimSpace(strings.TrimPrefix(s, "Name:"))
			if len(pack.Name) > MaxPackNameLen {
				return nil, loadErrorf(CodeMalformedGrid, -1, line,
					"pack name %q exceeds %d characters", pack.Name, MaxPackNameLen)
			}
		case strings.HasPrefix(s, "Levels:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(s, "Levels:")))
			if err != nil || n <= 0 {
				return nil, loadErrorf(CodeMalformedGrid, -1, line, "bad level count %q", s)
			}
			declared = n
		case strings.HasPrefix(s, "w:"):
			lvl, err := parseTextLevel(s, line, levelIdx, next)
			if err != nil {
				return nil, err
			}
			pack.Levels = append(pack.Levels, lvl)
			levelIdx++
		default:
			return nil, loadErrorf(CodeMalformedGrid, levelIdx, line, "unexpected line %q", s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading pack: %w", err)
	}

	if len(pack.Levels) == 0 {
		return nil, loadErrorf(CodeMalformedGrid, -1, 0, "pack contains no levels")
	}
	if declared >= 0 && declared != len(pack.Levels) {
		return nil, loadErrorf(CodeMalformedGrid, -1, 0,
			"header declares %d levels, found %d", declared, len(pack.Levels))
	}
	return pack, nil
}

// parseTextLevel parses one "w: W, h: H[, wrap]" header plus its grid rows.
func parseTextLevel(header string, headerLine, levelIdx int, next func() (string, bool)) (*engine.Level, error) {
	w, h, wrap, lerr := parseDims(header, headerLine, levelIdx)
	if lerr != nil {
		return nil, lerr
	}

	gb := &gridBuilder{level: levelIdx, w: w}
	for y := 0; y < h; y++ {
		row, ok := next()
		if !ok {
			return nil, loadErrorf(CodeMalformedGrid, levelIdx, headerLine,
				"grid truncated: got %d of %d rows", y, h)
		}
		if err := gb.addRow(row, y, headerLine+1+y); err != nil {
			return nil, err
		}
	}

	lvl, lerr := gb.build(fmt.Sprintf("Level %d", levelIdx+1), w, h, wrap)
	if lerr != nil {
		return nil, lerr
	}
	return lvl, nil
}

// parseDims parses the "w: W, h: H" header with optional trailing attributes.
func parseDims(s string, line, levelIdx int) (w, h int, wrap bool, err *LoadError) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "w:"):
			w, err = parseDim(part, "w:", line, levelIdx)
		case strings.HasPrefix(part, "h:"):
			h, err = parseDim(part, "h:", line, levelIdx)
		case part == "wrap":
			wrap = true
		default:
			err = loadErrorf(CodeMalformedGrid, levelIdx, line, "bad header attribute %q", part)
		}
		if err != nil {
			return 0, 0, false, err
		}
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false, loadErrorf(CodeMalformedGrid, levelIdx, line, "bad dimensions in %q", s)
	}
	return w, h, wrap, nil
}

func parseDim(part, prefix string, line, levelIdx int) (int, *LoadError) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(part, prefix)))
	if err != nil {
		return 0, loadErrorf(CodeMalformedGrid, levelIdx, line, "bad dimension %q", part)
	}
	return n, nil
}
