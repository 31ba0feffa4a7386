package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/k2d222/twwe-sub000/internal/tile"
)

// The yaml* types are the export form of a rule set. Rule is an interface,
// so each rule is flattened into a tagged record.

type yamlConfig struct {
	Name string    `yaml:"name"`
	Runs []yamlRun `yaml:"runs"`
}

type yamlRun struct {
	LayerCopy  bool            `yaml:"layer_copy"`
	IndexRules []yamlIndexRule `yaml:"index_rules"`
}

type yamlIndexRule struct {
	Tile  tile.Tile  `yaml:"tile"`
	Rules []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Kind   string      `yaml:"kind"`
	Offset *Point      `yaml:"offset,omitempty,flow"`
	States []yamlState `yaml:"states,omitempty"`
	Invert bool        `yaml:"invert,omitempty"`
	Coef   float64     `yaml:"coef,omitempty"`
}

type yamlState struct {
	ID     int   `yaml:"id"`
	VFlip  *bool `yaml:"vflip,omitempty"`
	HFlip  *bool `yaml:"hflip,omitempty"`
	Rotate *bool `yaml:"rotate,omitempty"`
}

// Marshal serializes configs to YAML for inspection.
func Marshal(configs []*Config) ([]byte, error) {
	out := make([]yamlConfig, 0, len(configs))

	for _, c := range configs {
		yc := yamlConfig{Name: c.Name}

		for _, run := range c.Runs {
			yr := yamlRun{LayerCopy: run.LayerCopy}

			for _, ir := range run.IndexRules {
				yir := yamlIndexRule{Tile: ir.Tile}

				for _, r := range ir.Rules {
					rule, err := exportRule(r)
					if err != nil {
						return nil, fmt.Errorf("config %q: %w", c.Name, err)
					}

					yir.Rules = append(yir.Rules, rule)
				}

				yr.IndexRules = append(yr.IndexRules, yir)
			}

			yc.Runs = append(yc.Runs, yr)
		}

		out = append(out, yc)
	}

	return yaml.Marshal(out)
}

func exportRule(r Rule) (yamlRule, error) {
	switch r := r.(type) {
	case *PosRule:
		offset := r.Offset
		yr := yamlRule{Kind: "pos", Offset: &offset, Invert: r.Invert}

		for _, s := range r.States {
			yr.States = append(yr.States, yamlState{
				ID:     s.ID,
				VFlip:  flagConstraint(s, tile.VFlip),
				HFlip:  flagConstraint(s, tile.HFlip),
				Rotate: flagConstraint(s, tile.Rotate),
			})
		}

		return yr, nil
	case *RandomRule:
		return yamlRule{Kind: "random", Coef: r.Coef}, nil
	default:
		return yamlRule{}, fmt.Errorf("unsupported rule type %T", r)
	}
}

func flagConstraint(s TileState, f tile.Flags) *bool {
	if !s.Mask.Has(f) {
		return nil
	}

	on := s.Want.Has(f)

	return &on
}
