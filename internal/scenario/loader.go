package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the scenario file looked up in the config directories.
const FileName = "pathfind.yaml"

// Load loads a scenario.
// Search order: customPath -> ~/.algodemos/configs/pathfind.yaml ->
// ./configs/pathfind.yaml -> embedded default.
// Only an explicit customPath turns read or parse failures into errors.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read scenario %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse scenario %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath(FileName); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultScenarioYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, one section at a time, and
// validates the result. A section the file leaves out keeps its defaults.
// A grid section the file names brings its own map: the default obstacles
// and rows are dropped. Likewise an mst section naming vertices or edges
// replaces the whole default graph.
func Parse(data []byte) (Config, error) {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return Config{}, err
	}

	cfg := Default()
	for name, node := range sections {
		var err error
		switch name {
		case "search":
			err = node.Decode(&cfg.Search)
		case "square":
			err = decodeGrid(&node, &cfg.Square)
		case "hex":
			err = decodeGrid(&node, &cfg.Hex)
		case "puzzle":
			err = node.Decode(&cfg.Puzzle)
		case "mst":
			if hasKey(&node, "vertices") || hasKey(&node, "edges") {
				cfg.MST.Vertices, cfg.MST.Edges = nil, nil
			}
			err = node.Decode(&cfg.MST)
		default:
			err = fmt.Errorf("%w: unknown section %q", ErrInvalid, name)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeGrid decodes node onto g after clearing the default map.
func decodeGrid(node *yaml.Node, g *GridScenario) error {
	g.Obstacles, g.Rows = nil, nil
	return node.Decode(g)
}

// hasKey reports whether the mapping node has key.
func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".algodemos", "configs", filename)
}
