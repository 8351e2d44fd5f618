package features

import (
	"fmt"

	"github.com/ctessum/geom"
	shp "github.com/jonas-p/go-shp"
)

// ReadShapefile decodes every shape in the file into the source geometry
// model. Features are numbered sequentially in file order.
func ReadShapefile(path string) (*Table, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var ids []uint64
	var geoms []geom.Geom
	for r.Next() {
		n, s := r.Shape()
		g, err := shapeToGeom(s)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %v", n, err)
		}
		ids = append(ids, uint64(n))
		geoms = append(geoms, g)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return &Table{ids: ids, geoms: geoms}, nil
}

func shapeToGeom(s shp.Shape) (geom.Geom, error) {
	switch t := s.(type) {
	case *shp.Point:
		return geom.Point{X: t.X, Y: t.Y}, nil
	case *shp.PolyLine:
		parts := splitParts(t.Parts, t.Points)
		if len(parts) != 1 {
			return nil, fmt.Errorf("multi-part polylines are not supported (%d parts)", len(parts))
		}
		return geom.LineString(parts[0]), nil
	case *shp.Polygon:
		// part 0 is taken as the exterior, the rest as interior rings;
		// winding-order multipolygon assembly is left to the caller
		parts := splitParts(t.Parts, t.Points)
		poly := make(geom.Polygon, len(parts))
		for i, part := range parts {
			poly[i] = geom.Path(part)
		}
		return poly, nil
	}
	return nil, fmt.Errorf("unsupported shape type %T", s)
}

func splitParts(offsets []int32, points []shp.Point) [][]geom.Point {
	parts := make([][]geom.Point, 0, len(offsets))
	for i, start := range offsets {
		end := len(points)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		part := make([]geom.Point, 0, end-int(start))
		for _, p := range points[start:end] {
			part = append(part, geom.Point{X: p.X, Y: p.Y})
		}
		parts = append(parts, part)
	}
	return parts
}
