package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Parse reads an STL file and returns a Model
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Read(bytes.NewReader(data))
}

// Read detects ASCII or binary STL and parses it
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	// binary headers may also start with "solid", so check for a facet too
	if string(head) == "solid" {
		if probe, _ := br.Peek(512); bytes.Contains(probe, []byte("facet")) {
			return readASCII(br)
		}
	}
	return readBinary(br)
}

func readASCII(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	model := NewModel("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")
		case "facet":
			if len(fields) == 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:])
				if err != nil {
					return nil, err
				}
				normal = v
			}
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed vertex line %q", scanner.Text())
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)
		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.Triangle{Normal: normal, V1: vertices[0], V2: vertices[1], V3: vertices[2]})
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q: %w", fields[i], err)
		}
		xyz[i] = f
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

func readBinary(r io.Reader) (*Model, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model := NewModel(strings.TrimRight(string(header), "\x00 "))
	var record [12]float32
	var attr uint16
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &attr); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		v := func(j int) geometry.Vector3 {
			return geometry.NewVector3(float64(record[j]), float64(record[j+1]), float64(record[j+2]))
		}
		model.AddTriangle(geometry.Triangle{Normal: v(0), V1: v(3), V2: v(6), V3: v(9)})
	}
	return model, nil
}
