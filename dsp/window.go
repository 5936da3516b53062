// window.go - window functions for windowed-sinc low-pass synthesis

package dsp

import "math"

// Window maps a normalized position in [0, 1] to a tapering weight.
type Window func(x Real) Real

// Rectangular is the trivial window: 1 on [0, 1].
func Rectangular(x Real) Real {
	if x < 0 || x > 1 {
		return 0
	}
	return 1
}

// Hamming is the raised-cosine window 25/46 - 21/46*cos(2*pi*x).
func Hamming(x Real) Real {
	if x < 0 || x > 1 {
		return 0
	}
	return Real(25.0/46.0 - 21.0/46.0*math.Cos(2*math.Pi*float64(x)))
}

// Hann is sin^2(pi*x), equivalent to SinePower(2).
func Hann(x Real) Real {
	return SinePower(2)(x)
}

// Welch is the parabolic window 1 - 4*(x - 1/2)^2.
func Welch(x Real) Real {
	if x < 0 || x > 1 {
		return 0
	}
	d := x - 0.5
	return 1 - 4*d*d
}

// Triangular is the order-1 cardinal B-spline.
func Triangular(x Real) Real {
	return BSpline(1)(x)
}

// Parzen is the order-3 cardinal B-spline.
func Parzen(x Real) Real {
	return BSpline(3)(x)
}

// SinePower returns the window sin^p(pi*x).
func SinePower(p Real) Window {
	return func(x Real) Real {
		if x < 0 || x > 1 {
			return 0
		}
		return Real(math.Pow(math.Sin(math.Pi*float64(x)), float64(p)))
	}
}

// BSpline returns the n-th order cardinal B-spline window, centered and
// scaled to support [0, 1].
func BSpline(n int) Window {
	return func(x Real) Real {
		if x < 0 || x > 1 {
			return 0
		}
		// Evaluate the symmetric cardinal B-spline of order n at the
		// point (n+1)*x, matching the closed-form alternating sum.
		u := Real(n+1) * x
		var sum Real
		for k := 0; k <= n+1; k++ {
			term := u - Real(k)
			if term <= 0 {
				continue
			}
			coeff := binomSign(k) / (factorial(k) * factorial(n+1-k))
			sum += coeff * Real(math.Pow(float64(term), float64(n)))
		}
		return Real(n+1) * sum
	}
}

func binomSign(k int) Real {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func factorial(n int) Real {
	r := Real(1)
	for i := 2; i <= n; i++ {
		r *= Real(i)
	}
	return r
}
