package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrUnknownConnectivity indicates an unsupported topology.
	ErrUnknownConnectivity = errors.New("gridgraph: unknown connectivity")
)
