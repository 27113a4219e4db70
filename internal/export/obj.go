// Package export writes generated meshes in interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/datascape/pkg/heightfield"
	dsmath "github.com/Faultbox/datascape/pkg/math"
	"github.com/Faultbox/datascape/pkg/palette"
)

// Object is one named mesh placed in the world.
type Object struct {
	Name   string
	Mesh   *heightfield.Mesh
	Offset dsmath.Vec3
}

// WriteOBJ writes objects as Wavefront OBJ. Vertex colors follow each position
// ("v x y z r g b") and faces reference position and normal ("f a//a ...").
func WriteOBJ(w io.Writer, colors palette.BucketColors, objects ...Object) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# datascape heightfield export")

	base := 1 // OBJ indices are 1-based and global across objects
	for _, obj := range objects {
		mesh := obj.Mesh
		fmt.Fprintf(bw, "o %s\n", sanitizeName(obj.Name))

		for _, v := range mesh.Vertices {
			p := dsmath.V3(v.Position).Add(obj.Offset)
			c := colors.For(v.Bucket)
			fmt.Fprintf(bw, "v %s %s %s %s %s %s\n",
				ff(p.X), ff(p.Y), ff(p.Z), ff(c.R), ff(c.G), ff(c.B))
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(bw, "vn %s %s %s\n", ff(v.Normal[0]), ff(v.Normal[1]), ff(v.Normal[2]))
		}
		for _, t := range mesh.Triangles {
			a, b, c := base+int(t[0]), base+int(t[1]), base+int(t[2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += len(mesh.Vertices)
	}
	return bw.Flush()
}

// WriteOBJFile writes objects to path, creating parent directories.
func WriteOBJFile(path string, colors palette.BucketColors, objects ...Object) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteOBJ(f, colors, objects...)
}

// OBJStats counts the records of an OBJ stream.
type OBJStats struct {
	Objects  int
	Vertices int
	Normals  int
	Faces    int
}

// ScanOBJ counts object, vertex, normal and face records and checks that face
// indices stay in range.
func ScanOBJ(r io.Reader) (OBJStats, error) {
	var st OBJStats
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "o":
			st.Objects++
		case "v":
			st.Vertices++
		case "vn":
			st.Normals++
		case "f":
			if len(fields) < 4 {
				return st, fmt.Errorf("line %d: face needs 3 vertices, found %d", line, len(fields)-1)
			}
			for _, fv := range fields[1:] {
				idx, err := strconv.Atoi(strings.SplitN(fv, "/", 2)[0])
				if err != nil {
					return st, fmt.Errorf("line %d: %w", line, err)
				}
				if idx < 1 || idx > st.Vertices {
					return st, fmt.Errorf("line %d: vertex index %d out of range", line, idx)
				}
			}
			st.Faces++
		}
	}
	return st, sc.Err()
}

func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "mesh"
	}
	return strings.Join(strings.Fields(name), "_")
}
