package calculator

import "math"

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns ErrDivisionByZero when b is exactly zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// SquareRoot returns ErrNegativeSquareRoot for x < 0.
func SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeSquareRoot
	}
	return math.Sqrt(x), nil
}

// CubeRoot is real valued: a negative x yields -cbrt(-x).
func CubeRoot(x float64) float64 {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}

func Sin(angle float64, isRadian bool) float64 {
	return math.Sin(toRadians(angle, isRadian))
}

func Cos(angle float64, isRadian bool) float64 {
	return math.Cos(toRadians(angle, isRadian))
}

func Tan(angle float64, isRadian bool) float64 {
	return math.Tan(toRadians(angle, isRadian))
}

func toRadians(angle float64, isRadian bool) float64 {
	if isRadian {
		return angle
	}
	return angle * math.Pi / 180
}
