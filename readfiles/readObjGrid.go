package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/types"
)

/*
ReadOBJ parses a Wavefront OBJ stream into a polygon soup: v records
become positions, f records become triangle index triples. Indices are
1 based in the file and may be negative (relative to the vertices read so
far); both are resolved to 0 based here. Faces carrying texture or normal
references (v/vt, v//vn, v/vt/vn) keep only the vertex index. Only
triangles are accepted: the halfedge builder's input contract requires
higher arity faces to be rejected before it runs.
*/
func ReadOBJ(r io.Reader) (soup *mesh.PolygonSoup, err error) {
	soup = &mesh.PolygonSoup{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex record has %d coordinates", lineNo, len(fields)-1)
			}
			var xyz [3]float64
			for i := 0; i < 3; i++ {
				if xyz[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
					return nil, fmt.Errorf("line %d: %v", lineNo, err)
				}
			}
			soup.Positions = append(soup.Positions, types.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices, only triangles are supported",
					lineNo, len(fields)-1)
			}
			for _, field := range fields[1:] {
				var vi int
				if vi, err = parseFaceIndex(field, len(soup.Positions)); err != nil {
					return nil, fmt.Errorf("line %d: %v", lineNo, err)
				}
				soup.TriangleIndices = append(soup.TriangleIndices, vi)
			}
		default:
			// vn, vt, o, g, s, mtllib, usemtl carry no connectivity
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return
}

func parseFaceIndex(field string, nVerts int) (vi int, err error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	if vi, err = strconv.Atoi(field); err != nil {
		return 0, fmt.Errorf("bad face index %q: %v", field, err)
	}
	if vi < 0 {
		vi = nVerts + vi // relative reference
	} else {
		vi-- // 1 based
	}
	if vi < 0 || vi >= nVerts {
		return 0, fmt.Errorf("face index %q out of range, have %d vertices", field, nVerts)
	}
	return
}

func ReadOBJFile(filename string) (soup *mesh.PolygonSoup, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadOBJ(file)
}

// WriteOBJ writes the soup back out as v and f records, 1 based.
func WriteOBJ(w io.Writer, soup *mesh.PolygonSoup) (err error) {
	bw := bufio.NewWriter(w)
	for _, p := range soup.Positions {
		if _, err = fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return
		}
	}
	for t := 0; t+2 < len(soup.TriangleIndices); t += 3 {
		if _, err = fmt.Fprintf(bw, "f %d %d %d\n",
			soup.TriangleIndices[t]+1,
			soup.TriangleIndices[t+1]+1,
			soup.TriangleIndices[t+2]+1); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteOBJFile(filename string, soup *mesh.PolygonSoup) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}
	defer file.Close()
	return WriteOBJ(file, soup)
}
