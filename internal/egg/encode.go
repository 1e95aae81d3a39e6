package egg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// fmtF formats a float32 with the shortest representation that parses back
// to the same value, so written documents round-trip exactly.
func fmtF(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// Encode writes the document in egg syntax.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<CoordinateSystem> { %s }\n\n", CoordinateSystem)
	fmt.Fprintf(bw, "<Group> %s {\n", d.Name)

	fmt.Fprintf(bw, "  <VertexPool> %s {\n", d.Name)
	for i, v := range d.Vertices {
		fmt.Fprintf(bw, "    <Vertex> %d {\n", i)
		fmt.Fprintf(bw, "      %s %s %s\n", fmtF(v.Position[0]), fmtF(v.Position[1]), fmtF(v.Position[2]))
		fmt.Fprintf(bw, "      <Normal> { %s %s %s }\n", fmtF(v.Normal[0]), fmtF(v.Normal[1]), fmtF(v.Normal[2]))
		fmt.Fprintf(bw, "      <UV> { %s %s }\n", fmtF(v.UV[0]), fmtF(v.UV[1]))
		fmt.Fprintf(bw, "    }\n")
	}
	fmt.Fprintf(bw, "  }\n")

	for _, p := range d.Polygons {
		fmt.Fprintf(bw, "  <Polygon> { <VertexRef> { %d %d %d <Ref> { %s } } }\n",
			p.Refs[0], p.Refs[1], p.Refs[2], d.Name)
	}

	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// WriteFile writes the document to path atomically: the content goes to a
// temporary file in the same directory which is renamed over the target
// only after a successful write, so a failure never leaves partial output
// at the destination.
func (d *Document) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := d.Encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write egg data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not move egg file into place: %w", err)
	}
	return nil
}
