package tile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFlags parses the String form of Flags ("VFLIP|ROTATE", "VFLIP|0x04",
// "NONE") or a plain integer bitset.
func ParseFlags(s string) (Flags, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NONE") {
		return NoFlags, nil
	}

	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return Flags(n), nil
	}

	var f Flags

	for part := range strings.SplitSeq(s, "|") {
		part = strings.TrimSpace(part)

		switch strings.ToUpper(part) {
		case "VFLIP":
			f |= VFlip
		case "HFLIP":
			f |= HFlip
		case "ROTATE":
			f |= Rotate
		default:
			// String writes bits without a name as hex.
			n, err := strconv.ParseUint(part, 0, 8)
			if err != nil {
				return 0, fmt.Errorf("unknown tile flag %q", part)
			}

			f |= Flags(n)
		}
	}

	return f, nil
}

// MarshalYAML writes flags in their String form.
func (f Flags) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML accepts both the String form and an integer bitset.
func (f *Flags) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: tile flags must be a scalar", node.Line)
	}

	parsed, err := ParseFlags(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*f = parsed

	return nil
}
