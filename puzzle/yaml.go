package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/horizon/factory"
	"github.com/katalvlaran/horizon/heightmap"
	"github.com/katalvlaran/horizon/network"
	"github.com/katalvlaran/horizon/resource"
)

type valvesDoc struct {
	Valves []network.Valve `yaml:"valves"`
}

// amounts maps resource names to quantities, e.g. {ore: 3, obsidian: 8}.
type amounts map[string]int64

type itemDoc struct {
	Name  string  `yaml:"name"`
	Cost  amounts `yaml:"cost"`
	Yield amounts `yaml:"yield"`
}

type blueprintDoc struct {
	ID    int       `yaml:"id"`
	Items []itemDoc `yaml:"items"`
}

type blueprintsDoc struct {
	Blueprints []blueprintDoc `yaml:"blueprints"`
}

// LoadValvesYAML decodes
//
//	valves:
//	  - label: AA
//	    rate: 0
//	    tunnels: [DD, II, BB]
func LoadValvesYAML(r io.Reader) ([]network.Valve, error) {
	var doc valvesDoc
	if err := decodeStrict(r, &doc); err != nil {
		return nil, err
	}
	if len(doc.Valves) == 0 {
		return nil, fmt.Errorf("%w: no valves", ErrMalformedInput)
	}

	return doc.Valves, nil
}

// LoadBlueprintsYAML decodes blueprints with arbitrary item menus:
//
//	blueprints:
//	  - id: 1
//	    items:
//	      - name: geode robot
//	        cost: {ore: 2, obsidian: 7}
//	        yield: {geode: 1}
//
// Each blueprint is validated with factory.Blueprint.Validate.
func LoadBlueprintsYAML(r io.Reader) ([]factory.Blueprint, error) {
	var doc blueprintsDoc
	if err := decodeStrict(r, &doc); err != nil {
		return nil, err
	}
	if len(doc.Blueprints) == 0 {
		return nil, fmt.Errorf("%w: no blueprints", ErrMalformedInput)
	}

	bps := make([]factory.Blueprint, 0, len(doc.Blueprints))
	for _, bd := range doc.Blueprints {
		bp := factory.Blueprint{ID: bd.ID, Items: make([]factory.Item, 0, len(bd.Items))}
		for _, id := range bd.Items {
			cost, err := id.Cost.vector()
			if err != nil {
				return nil, fmt.Errorf("blueprint %d item %q cost: %w", bd.ID, id.Name, err)
			}
			yield, err := id.Yield.vector()
			if err != nil {
				return nil, fmt.Errorf("blueprint %d item %q yield: %w", bd.ID, id.Name, err)
			}
			bp.Items = append(bp.Items, factory.Item{Name: id.Name, Cost: cost, Yield: yield})
		}
		if err := bp.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		bps = append(bps, bp)
	}

	return bps, nil
}

func (a amounts) vector() (resource.Vector, error) {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	var v resource.Vector
	for _, name := range names {
		k, ok := resource.ParseKind(name)
		if !ok {
			return resource.Vector{}, fmt.Errorf("%w: unknown resource %q", ErrMalformedInput, name)
		}
		v[k] += a[name]
	}

	return v, nil
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		// yaml errors already carry "line N"
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// ValvesFile reads valves from path, as YAML or text by extension.
func ValvesFile(path string) ([]network.Valve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	defer f.Close()

	if isYAML(path) {
		return LoadValvesYAML(f)
	}

	return ParseValves(f)
}

// BlueprintsFile reads blueprints from path, as YAML or text by extension.
func BlueprintsFile(path string) ([]factory.Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	defer f.Close()

	if isYAML(path) {
		return LoadBlueprintsYAML(f)
	}

	return ParseBlueprints(f)
}

// HeightmapFile reads a letter grid from path.
func HeightmapFile(path string) (*heightmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	defer f.Close()

	return ParseHeightmap(f)
}
