// Package shapes holds small aggregate types used throughout the reflector
// tests and as fixtures for the descriptor generator.
package shapes

// Point is a two-dimensional point stored as a coordinate pair.
type Point struct {
	Coords [2]float64
}

// Circle is a center point and a radius.
type Circle struct {
	Center Point
	Radius float64
}

// Cylinder is a base circle extruded to a height.
type Cylinder struct {
	Surface Circle
	Height  float64
}

// Record exercises mixed field sizes, interior padding and header-shaped
// fields.
type Record struct {
	Flag  bool
	Count int32
	Total int64
	Label string
	Grid  [2][3]float64
	Tags  []string
	Attrs map[string]string
	Next  *Record
}
