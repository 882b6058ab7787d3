// Package math provides float32 scalar, vector, and matrix types for
// 3D rendering geometry.
package math

import "github.com/chewxy/math32"

// Pi is the circle constant.
const Pi = math32.Pi

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / Pi)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Sin returns the sine of x (radians).
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 { return math32.Cos(x) }

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 { return math32.Tan(x) }

// Acos returns the arccosine of x, in radians.
func Acos(x float32) float32 { return math32.Acos(x) }

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y float32) float32 { return math32.Copysign(x, y) }

// NaN returns a float32 not-a-number value.
func NaN() float32 { return math32.NaN() }

// IsNaN reports whether x is a not-a-number value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// IsInf reports whether x is an infinity, according to sign (see math.IsInf).
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }
