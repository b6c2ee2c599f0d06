package scene

import (
	"fmt"
	"strings"
)

// Create builds a built-in scene by name ("cube", "quad"), or loads one
// from disk for names of the form "obj:<path>" or "obj:<path>:<texture>".
// Both frontends resolve their -scene flag through this.
func Create(name string) (*Scene, error) {
	switch {
	case name == "cube":
		return NewCubeScene(), nil
	case name == "quad":
		return NewQuadScene(), nil
	case strings.HasPrefix(name, "obj:"):
		parts := strings.SplitN(strings.TrimPrefix(name, "obj:"), ":", 2)
		texture := ""
		if len(parts) == 2 {
			texture = parts[1]
		}
		if parts[0] == "" {
			return nil, fmt.Errorf("obj scene needs a mesh path")
		}
		return NewOBJScene(parts[0], texture)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", name)
	}
}
