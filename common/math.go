package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * (math32.Pi / 180.0)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float32) bool {
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NormalizeDegrees wraps an angle in degrees into the half-open range (-180, 180].
// Non-finite inputs are returned unchanged; callers reject them with Finite.
//
// Parameters:
//   - degrees: the angle to wrap
//
// Returns:
//   - float32: the equivalent angle in (-180, 180]
func NormalizeDegrees(degrees float32) float32 {
	if !Finite(degrees) {
		return degrees
	}
	// Mod is exact, so large magnitudes reduce without losing the remainder.
	degrees = math32.Mod(degrees, 360)
	wrapped := degrees - 360*math32.Ceil((degrees-180)/360)
	// Rounding in the subtraction above can land exactly on the excluded bound.
	if wrapped <= -180 {
		wrapped += 360
	}
	if wrapped > 180 {
		wrapped -= 360
	}
	return wrapped
}
