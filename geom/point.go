package geom

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hnimtadd/fixture/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// A point in the plane. Points are plain values, two points are the same
// point iff both coordinates compare equal.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between p and other.
//
// NaN in any coordinate gives NaN. math.Hypot is not used here since it
// reports +Inf for (Inf, NaN).
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf(
		"Point at (%s, %s)",
		strconv.FormatFloat(p.X, 'g', -1, 64),
		strconv.FormatFloat(p.Y, 'g', -1, 64),
	)
}

func (p Point) Hash() uint64 {
	hashed, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash point: %v", err))
	return hashed
}
