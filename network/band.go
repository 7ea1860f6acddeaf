package network

import (
	"fmt"

	"github.com/katalvlaran/polysched/relation"
)

// Band is one weight range of the partition: (Lo, Hi], or [0, Hi] for the
// final band.
type Band struct {
	Lo, Hi int
	Final  bool
}

// Apply returns the sub-matrix of rel holding the edges inside the band.
func (b Band) Apply(rel relation.Matrix) relation.Matrix {
	if b.Final {
		return rel.AtMost(b.Hi)
	}
	return rel.Band(b.Lo, b.Hi)
}

func (b Band) String() string {
	if b.Final {
		return fmt.Sprintf("[0,%d]", b.Hi)
	}
	return fmt.Sprintf("(%d,%d]", b.Lo, b.Hi)
}

// Bands partitions weights [0, maxWeight] into layerCount halved bands
// followed by the final band, heaviest first.
func Bands(maxWeight, layerCount int) []Band {
	var (
		out  = make([]Band, 0, layerCount+1)
		size = maxWeight
	)
	for ; layerCount > 0; layerCount-- {
		out = append(out, Band{Lo: size / 2, Hi: size})
		size /= 2
	}

	return append(out, Band{Hi: size, Final: true})
}
