package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gocloset/pkg/geometry"
)

const headerSize = 80

// WriteBinary writes the model in binary STL format
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, "gocloset "+m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	var record [12]float32
	for _, t := range m.Triangles {
		for i, v := range []geometry.Vector3{t.Normal, t.V1, t.V2, t.V3} {
			record[i*3] = float32(v.X)
			record[i*3+1] = float32(v.Y)
			record[i*3+2] = float32(v.Z)
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle: %w", err)
		}
		// attribute byte count
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write triangle: %w", err)
		}
	}
	return bw.Flush()
}

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVertex(t.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range t.Vertices() {
			fmt.Fprintf(bw, "      vertex %s\n", formatVertex(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)
	return bw.Flush()
}

func formatVertex(v geometry.Vector3) string {
	return fmt.Sprintf("%g %g %g", clean(v.X), clean(v.Y), clean(v.Z))
}

// clean avoids writing -0
func clean(f float64) float64 {
	if f == 0 || math.IsNaN(f) {
		return 0
	}
	return f
}
