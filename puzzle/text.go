package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/horizon/factory"
	"github.com/katalvlaran/horizon/heightmap"
	"github.com/katalvlaran/horizon/network"
)

// ErrMalformedInput indicates input that does not match the expected format.
var ErrMalformedInput = errors.New("puzzle: malformed input")

var (
	valveLine = regexp.MustCompile(
		`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`)

	blueprintRecord = regexp.MustCompile(
		`Blueprint (\d+):\s+` +
			`Each ore robot costs (\d+) ore\.\s+` +
			`Each clay robot costs (\d+) ore\.\s+` +
			`Each obsidian robot costs (\d+) ore and (\d+) clay\.\s+` +
			`Each geode robot costs (\d+) ore and (\d+) obsidian\.`)
)

// ParseValves reads lines such as
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Blank lines are skipped.
func ParseValves(r io.Reader) ([]network.Valve, error) {
	var valves []network.Valve
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := valveLine.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, line, text)
		}
		rate, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rate: %w", ErrMalformedInput, line, err)
		}
		valves = append(valves, network.Valve{
			Label:   m[1],
			Rate:    rate,
			Tunnels: strings.Split(m[3], ", "),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read valves: %w", err)
	}
	if len(valves) == 0 {
		return nil, fmt.Errorf("%w: no valves", ErrMalformedInput)
	}

	return valves, nil
}

// ParseBlueprints reads the standard four-robot blueprint sentences. A
// record may be wrapped over several lines; anything between records other
// than whitespace is rejected.
func ParseBlueprints(r io.Reader) ([]factory.Blueprint, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read blueprints: %w", err)
	}
	text := string(raw)

	var (
		bps  []factory.Blueprint
		last int
	)
	for _, loc := range blueprintRecord.FindAllStringSubmatchIndex(text, -1) {
		if gap := strings.TrimSpace(text[last:loc[0]]); gap != "" {
			return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrMalformedInput, lineAt(text, last), firstLine(gap))
		}
		var n [7]int64
		for i := range n {
			field := text[loc[2+2*i]:loc[3+2*i]]
			if n[i], err = strconv.ParseInt(field, 10, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, lineAt(text, loc[0]), err)
			}
		}
		bps = append(bps, factory.StandardBlueprint(int(n[0]), [6]int64(n[1:])))
		last = loc[1]
	}
	if gap := strings.TrimSpace(text[last:]); gap != "" {
		return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrMalformedInput, lineAt(text, last), firstLine(gap))
	}
	if len(bps) == 0 {
		return nil, fmt.Errorf("%w: no blueprints", ErrMalformedInput)
	}

	return bps, nil
}

// ParseHeightmap reads a letter grid; see heightmap.Parse.
func ParseHeightmap(r io.Reader) (*heightmap.Map, error) {
	m, err := heightmap.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return m, nil
}

// lineAt returns the 1-based line of offset in text, skipping leading
// whitespace so the line names the first offending character.
func lineAt(text string, offset int) int {
	for offset < len(text) && (text[offset] == ' ' || text[offset] == '\n' || text[offset] == '\t' || text[offset] == '\r') {
		offset++
	}

	return strings.Count(text[:offset], "\n") + 1
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
