package cellgo

// Constants describing the fixed subdivision of the sphere. The hierarchy has
// six root faces, each split into four children per level down to MaxLevel.
const (
	// MaxLevel is the finest subdivision depth. Level 0 cells are the six
	// root faces.
	MaxLevel = 30

	// NumFaces is the number of root faces.
	NumFaces = 6

	// faceBits is the number of high bits used for the face number.
	faceBits = 3

	// posBits is the number of low bits used for the position along the
	// space-filling curve, including the trailing level-marker bit.
	posBits = 2*MaxLevel + 1

	// maxSize is the number of leaf cells along one edge of a face.
	maxSize = 1 << MaxLevel
)
