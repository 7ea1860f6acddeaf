// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// constants.go - method tags and domain minima shared by constructors.

package builder

// Method tags used as error context prefixes.
const (
	methodBuildNetwork = "BuildNetwork"
	methodStar         = "Star"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Domain minima.
const (
	minNetworkSize  = 1
	minStarNodes    = 2
	minPathNodes    = 2
	minCycleNodes   = 3
	minCompleteSize = 1
	probMin         = 0.0
	probMax         = 1.0
)

// DefaultEdgeWeight is the weight of every generated edge when no weight
// option is given.
const DefaultEdgeWeight = 1

// DefaultDensity is the pair probability used by the command-line generator:
// each pair is related with probability 5%.
const DefaultDensity = 0.05
