package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-scanline-renderer/pkg/core"
	"github.com/df07/go-scanline-renderer/pkg/geometry"
)

// defaultUV is assigned per corner when a face carries no texture indices
var defaultUV = [3]core.TexCoord{
	core.NewTexCoord(0, 1),
	core.NewTexCoord(0, 0),
	core.NewTexCoord(1, 0),
}

// LoadOBJ loads a mesh from a restricted OBJ subset with three line kinds:
//
//	v x y z            vertex position
//	vt u v             texture coordinate (v flipped to top-down row order)
//	f a/ta b/tb c/tc   1-indexed face, optionally with a 4th corner d/td
//
// A 4-corner face is split into the triangles [a,b,c] and [c,d,a]. Faces
// without /-pairs are accepted and get a fixed default UV set. Any other
// line kind is ignored. Parse errors are fatal: a partially loaded mesh is
// never returned.
func LoadOBJ(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	var vertices []geometry.Vertex
	var texCoords []core.TexCoord
	var faces []geometry.Face

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			coords, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vertices = append(vertices, core.NewPoint(coords[0], coords[1], coords[2]))

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texture coordinate needs 2 components", lineNum)
			}
			coords, err := parseFloats(fields[1:3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			// Flip v so texture rows run top-down like the image buffer
			texCoords = append(texCoords, core.NewTexCoord(coords[0], 1-coords[1]))

		case "f":
			if len(fields) != 4 && len(fields) != 5 {
				return nil, fmt.Errorf("line %d: face needs 3 or 4 corners", lineNum)
			}

			corners := fields[1:]
			vi := make([]int, len(corners))
			ti := make([]int, len(corners))
			textured := strings.Contains(corners[0], "/")
			for i, c := range corners {
				vi[i], ti[i], err = parseCorner(c, textured)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				if vi[i] < 1 || vi[i] > len(vertices) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range", lineNum, vi[i])
				}
				if textured && (ti[i] < 1 || ti[i] > len(texCoords)) {
					return nil, fmt.Errorf("line %d: texture index %d out of range", lineNum, ti[i])
				}
			}

			uvAt := func(i int) core.TexCoord {
				return texCoords[ti[i]-1]
			}
			if textured {
				faces = append(faces, geometry.Face{
					V:  [3]int{vi[0] - 1, vi[1] - 1, vi[2] - 1},
					UV: [3]core.TexCoord{uvAt(0), uvAt(1), uvAt(2)},
				})
			} else {
				faces = append(faces, geometry.Face{
					V:  [3]int{vi[0] - 1, vi[1] - 1, vi[2] - 1},
					UV: defaultUV,
				})
			}

			// Quad faces split along the c-a diagonal
			if len(corners) == 4 {
				if textured {
					faces = append(faces, geometry.Face{
						V:  [3]int{vi[2] - 1, vi[3] - 1, vi[0] - 1},
						UV: [3]core.TexCoord{uvAt(2), uvAt(3), uvAt(0)},
					})
				} else {
					faces = append(faces, geometry.Face{
						V:  [3]int{vi[2] - 1, vi[3] - 1, vi[0] - 1},
						UV: defaultUV,
					})
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	return geometry.NewMesh(vertices, faces), nil
}

// parseCorner parses one face corner, either "a/ta" or a bare index
func parseCorner(s string, textured bool) (vertex, tex int, err error) {
	if !textured {
		if strings.Contains(s, "/") {
			return 0, 0, fmt.Errorf("mixed textured and untextured corners in %q", s)
		}
		vertex, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid vertex index %q", s)
		}
		return vertex, 0, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("corner %q missing texture index", s)
	}
	vertex, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid vertex index %q", parts[0])
	}
	tex, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid texture index %q", parts[1])
	}
	return vertex, tex, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}
