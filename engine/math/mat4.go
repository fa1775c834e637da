package math

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/math/f32"
)

// ErrIndexOutOfRange is returned when a row or column is outside [0, 4).
var ErrIndexOutOfRange = errors.New("matrix index out of range")

// AngleUnit names how an angle handed to a rotation is interpreted.
type AngleUnit uint8

const (
	// Angles are fed to sin/cos as-is.
	AngleUnitRadians AngleUnit = iota
	// Angles are converted with DegToRad before use.
	AngleUnitDegrees
)

func (u AngleUnit) String() string {
	switch u {
	case AngleUnitRadians:
		return "radians"
	case AngleUnitDegrees:
		return "degrees"
	default:
		return fmt.Sprintf("AngleUnit(%d)", uint8(u))
	}
}

// ParseAngleUnit maps "radians"/"rad" and "degrees"/"deg" to an AngleUnit.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radians", "rad", "":
		return AngleUnitRadians, nil
	case "degrees", "deg":
		return AngleUnitDegrees, nil
	default:
		return 0, fmt.Errorf("unknown angle unit %q", s)
	}
}

// ToRadians converts angle, expressed in u, to radians.
func (u AngleUnit) ToRadians(angle float32) float32 {
	if u == AngleUnitDegrees {
		return DegToRad(angle)
	}
	return angle
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

func checkIndex(row, col int) error {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfRange, row, col)
	}
	return nil
}

// Get returns the element at (row, col).
func (mt Mat4) Get(row, col int) (float32, error) {
	if err := checkIndex(row, col); err != nil {
		return 0, err
	}
	return mt.Data[col*4+row], nil
}

// MustGet is Get for indices known to be valid. It panics otherwise.
func (mt Mat4) MustGet(row, col int) float32 {
	v, err := mt.Get(row, col)
	if err != nil {
		panic(err)
	}
	return v
}

// Set returns a copy of mt with (row, col) set to value. On an invalid
// index the matrix is returned unchanged along with the error.
func (mt Mat4) Set(row, col int, value float32) (Mat4, error) {
	if err := checkIndex(row, col); err != nil {
		return mt, err
	}
	mt.Data[col*4+row] = value
	return mt, nil
}

/**
 * @brief Returns the result of multiplying mt and other (mt·other).
 *
 * When the product is applied to a column vector, other acts first.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += mt.Data[k*4+row] * other.Data[col*4+k]
			}
			out_matrix.Data[col*4+row] = sum
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates an axis-angle rotation matrix.
 *
 * The axis (x, y, z) must already be unit length: it is used as given, and a
 * non-unit axis yields a matrix that also scales and shears.
 *
 * @param angle_radians The angle in radians.
 * @return A rotation matrix.
 */
func NewMat4Rotation(angle_radians, x, y, z float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	t := 1 - c

	out_matrix.Data[0] = c + x*x*t
	out_matrix.Data[1] = y*x*t + z*s
	out_matrix.Data[2] = z*x*t - y*s

	out_matrix.Data[4] = x*y*t - z*s
	out_matrix.Data[5] = c + y*y*t
	out_matrix.Data[6] = z*y*t + x*s

	out_matrix.Data[8] = x*z*t + y*s
	out_matrix.Data[9] = y*z*t - x*s
	out_matrix.Data[10] = c + z*z*t
	return out_matrix
}

// Translate returns mt·T where T translates by (x, y, z).
func (mt Mat4) Translate(x, y, z float32) Mat4 {
	return mt.Mul(NewMat4Translation(NewVec3(x, y, z)))
}

// Scale returns mt·S where S scales the axes by (x, y, z).
func (mt Mat4) Scale(x, y, z float32) Mat4 {
	return mt.Mul(NewMat4Scale(NewVec3(x, y, z)))
}

// Rotate returns mt·R where R rotates by angle radians around the unit
// axis (x, y, z). The axis is not normalized; see RotateNormalized.
func (mt Mat4) Rotate(angle, x, y, z float32) Mat4 {
	return mt.Mul(NewMat4Rotation(angle, x, y, z))
}

// RotateDegrees is Rotate with angle given in degrees.
func (mt Mat4) RotateDegrees(angle, x, y, z float32) Mat4 {
	return mt.Rotate(DegToRad(angle), x, y, z)
}

// RotateIn is Rotate with angle interpreted in unit.
func (mt Mat4) RotateIn(unit AngleUnit, angle, x, y, z float32) Mat4 {
	return mt.Rotate(unit.ToRadians(angle), x, y, z)
}

// RotateNormalized normalizes (x, y, z) before rotating by angle radians.
// A zero axis has no direction, so mt is returned unchanged.
func (mt Mat4) RotateNormalized(angle, x, y, z float32) Mat4 {
	axis := NewVec3(x, y, z)
	if axis.LengthSquared() == 0 {
		return mt
	}
	axis = axis.Normalized()
	return mt.Rotate(angle, axis.X, axis.Y, axis.Z)
}

// Transform returns mt·v, treating v as a column vector.
func (mt Mat4) Transform(v Vec4) Vec4 {
	d := &mt.Data
	return Vec4{
		X: d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12]*v.W,
		Y: d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13]*v.W,
		Z: d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14]*v.W,
		W: d[3]*v.X + d[7]*v.Y + d[11]*v.Z + d[15]*v.W,
	}
}

// TransformPoint transforms the point p (w = 1) and drops w.
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	return mt.Transform(p.ToVec4(1)).ToVec3()
}

// Compare reports whether every element of mt is within tolerance of other.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// RowMajor returns mt in the row-major layout used by golang.org/x/image/math/f32.
func (mt Mat4) RowMajor() f32.Mat4 {
	var out f32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = mt.Data[col*4+row]
		}
	}
	return out
}

// NewMat4FromRowMajor is the inverse of RowMajor.
func NewMat4FromRowMajor(in f32.Mat4) Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = in[row*4+col]
		}
	}
	return out_matrix
}

// Print writes the matrix row by row, for debugging.
func (mt Mat4) Print(w io.Writer) error {
	_, err := io.WriteString(w, mt.String())
	return err
}

func (mt Mat4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "%g %g %g %g\n", mt.Data[row], mt.Data[4+row], mt.Data[8+row], mt.Data[12+row])
	}
	return sb.String()
}
