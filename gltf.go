package tetrabsp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFLevelOptions alters how LoadGLTFLevel turns a glTF document into a Level.
type GLTFLevelOptions struct {
	// PartitionPrefix, if set, limits loading to mesh nodes whose name starts with it, so the level's floor plan
	// can live in the same file as its render meshes.
	PartitionPrefix string
	// Scale multiplies every position read.
	Scale float64
}

// DefaultGLTFLevelOptions creates an instance of GLTFLevelOptions with some sensible defaults.
func DefaultGLTFLevelOptions() *GLTFLevelOptions {
	return &GLTFLevelOptions{
		Scale: 1,
	}
}

// Node extras naming other partitions; the edges shared with each named partition get a Wall of the given kind.
var gltfWallExtras = []struct {
	key   string
	flags WallFlags
}{
	{"doors", WallTwoSided | WallClosed},
	{"windows", WallTwoSided},
	{"walls", WallSolid},
}

// LoadGLTFLevelFile loads a Level from the .gltf or .glb file at the path given. See LoadGLTFLevel.
func LoadGLTFLevelFile(path string, options *GLTFLevelOptions) (*Level, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFLevel(bytes.NewReader(fileData), options)

}

// LoadGLTFLevel loads a Level from glTF data. Every mesh node is a floor plan of one convex partition lying flat
// in the XZ plane (Y up, as Blender exports it); the outline of its triangles becomes the partition's boundary,
// and its name the partition's name. Partitions sharing an edge are joined by a portal.
//
// A node's custom properties (glTF extras) are copied into the Partition's Properties. The extras "doors",
// "windows" and "walls" may each list the names of other partitions, to put a closed door, a window or a solid
// divider on the edges shared with them.
func LoadGLTFLevel(r io.Reader, options *GLTFLevelOptions) (*Level, error) {

	decoder := gltf.NewDecoder(r)

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	if options == nil {
		options = DefaultGLTFLevelOptions()
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	builder := NewLevelBuilder()

	extras := map[PartitionID]map[string]interface{}{}

	for _, node := range doc.Nodes {

		if node.Mesh == nil || !strings.HasPrefix(node.Name, options.PartitionPrefix) {
			continue
		}

		offset := Vector{float64(node.Translation[0]), -float64(node.Translation[2])}

		outline, err := meshOutline(doc, doc.Meshes[*node.Mesh], offset, scale)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", node.Name, err)
		}

		id := builder.AddPartition(node.Name, outline...)

		if dataMap, isMap := node.Extras.(map[string]interface{}); isMap {
			extras[id] = dataMap
		}

	}

	level, err := builder.Build()
	if err != nil {
		return nil, err
	}

	for id, dataMap := range extras {

		part := level.Partition(id)

		for name, value := range dataMap {
			part.Properties.Get(name).Set(value)
		}

		for _, kind := range gltfWallExtras {

			if !part.Properties.Has(kind.key) {
				continue
			}

			for _, otherName := range part.Properties.Get(kind.key).AsStrings() {

				other := level.FindPartition(otherName)
				if other == nil {
					Logger().Warn("tetrabsp: glTF level names a missing partition", "partition", part.Name, kind.key, otherName)
					continue
				}

				wall := NewWall(part.Name+"|"+other.Name, kind.flags)
				if level.SetSharedWall(part.ID, other.ID, wall) == 0 {
					Logger().Warn("tetrabsp: glTF level partitions share no edge", "partition", part.Name, kind.key, otherName)
				}

			}

		}

	}

	Logger().Debug("tetrabsp: glTF level loaded", "partitions", level.PartitionCount())

	return level, nil

}

// meshOutline returns the boundary loop of the mesh's triangles, projected onto the floor plane.
func meshOutline(doc *gltf.Document, mesh *gltf.Mesh, offset Vector, scale float64) ([]Vector, error) {

	points := map[vertexKey]Vector{}
	edgeCount := map[edgeKey]int{}
	var directed []edgeKey

	for _, v := range mesh.Primitives {

		if v.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posAccessor, exists := v.Attributes[gltf.POSITION]
		if !exists {
			continue
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

		if err != nil {
			return nil, err
		}

		var indices []uint32

		if v.Indices != nil {
			indexBuffer := []uint32{}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)
			if err != nil {
				return nil, err
			}
		} else {
			indices = make([]uint32, len(vertPos))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		keys := make([]vertexKey, len(vertPos))

		for i, p := range vertPos {
			point := Vector{float64(p[0]), -float64(p[2])}.Add(offset).Scale(scale)
			keys[i] = keyOf(point)
			points[keys[i]] = point
		}

		for t := 0; t+2 < len(indices); t += 3 {

			a, b, c := indices[t], indices[t+1], indices[t+2]

			if int(a) >= len(keys) || int(b) >= len(keys) || int(c) >= len(keys) {
				return nil, fmt.Errorf("triangle %d indexes past the %d positions", t/3, len(keys))
			}

			ka, kb, kc := keys[a], keys[b], keys[c]
			if ka == kb || kb == kc || kc == ka {
				continue
			}

			for _, e := range [3]edgeKey{{ka, kb}, {kb, kc}, {kc, ka}} {
				directed = append(directed, e)
				edgeCount[e.undirected()]++
			}

		}

	}

	next := map[vertexKey]vertexKey{}
	var start vertexKey
	started := false

	for _, e := range directed {

		if edgeCount[e.undirected()] != 1 {
			continue
		}

		if _, exists := next[e.a]; exists {
			return nil, fmt.Errorf("mesh %q outline isn't a simple loop", mesh.Name)
		}

		next[e.a] = e.b

		if !started || e.a[0] < start[0] || (e.a[0] == start[0] && e.a[1] < start[1]) {
			start = e.a
			started = true
		}

	}

	if len(next) < 3 {
		return nil, fmt.Errorf("mesh %q has no floor outline", mesh.Name)
	}

	loop := make([]Vector, 0, len(next))

	for key := start; ; {
		loop = append(loop, points[key])
		to, exists := next[key]
		if !exists || len(loop) > len(next) {
			return nil, fmt.Errorf("mesh %q outline isn't a closed loop", mesh.Name)
		}
		key = to
		if key == start {
			break
		}
	}

	if len(loop) != len(next) {
		return nil, fmt.Errorf("mesh %q outline has holes or separate pieces", mesh.Name)
	}

	return loop, nil

}
