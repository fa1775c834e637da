package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief a 4x4 matrix, used to represent object transformations.
 *
 * Elements are stored column-major so Data can be handed directly to a
 * "column-major 4x4 uniform" upload:
 *
 *  0  4  8 12
 *  1  5  9 13
 *  2  6 10 14
 *  3  7 11 15
 *
 * The zero value is NOT the identity; use NewMat4Identity.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}
