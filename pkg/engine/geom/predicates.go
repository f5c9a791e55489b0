package geom

import (
	"math"
	"math/big"
)

// Error bounds for the floating-point fast path of orient and inCircle
// (Shewchuk, "Adaptive Precision Floating-Point Arithmetic"). When a result
// lies within its bound the sign is recomputed exactly.
var (
	epsilon          = math.Ldexp(1, -53)
	orientErrBound   = (3 + 16*epsilon) * epsilon
	inCircleErrBound = (10 + 96*epsilon) * epsilon
)

// orient returns +1 when a, b, c turn counterclockwise, -1 when they turn
// clockwise and 0 when they are collinear.
func orient(a, b, c Vector2) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	bound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > bound || -det > bound {
		return sign(det)
	}
	return orientExact(a, b, c)
}

// inCircle returns +1 when d lies strictly inside the circle through the
// counterclockwise triangle a, b, c, -1 when it lies outside and 0 when the
// four points are cocircular.
func inCircle(a, b, c, d Vector2) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift

	bound := inCircleErrBound * permanent
	if det > bound || -det > bound {
		return sign(det)
	}
	return inCircleExact(a, b, c, d)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// float64 values are dyadic rationals, so big.Rat holds them and every
// intermediate product without rounding.
func ratSub(x, y float64) *big.Rat {
	return new(big.Rat).Sub(new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y))
}

func ratMul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

func ratCross(ax, ay, bx, by *big.Rat) *big.Rat {
	return new(big.Rat).Sub(ratMul(ax, by), ratMul(ay, bx))
}

func orientExact(a, b, c Vector2) int {
	acx, acy := ratSub(a.X, c.X), ratSub(a.Y, c.Y)
	bcx, bcy := ratSub(b.X, c.X), ratSub(b.Y, c.Y)
	return ratCross(acx, acy, bcx, bcy).Sign()
}

func inCircleExact(a, b, c, d Vector2) int {
	adx, ady := ratSub(a.X, d.X), ratSub(a.Y, d.Y)
	bdx, bdy := ratSub(b.X, d.X), ratSub(b.Y, d.Y)
	cdx, cdy := ratSub(c.X, d.X), ratSub(c.Y, d.Y)

	lift := func(x, y *big.Rat) *big.Rat {
		return new(big.Rat).Add(ratMul(x, x), ratMul(y, y))
	}

	det := ratMul(lift(adx, ady), ratCross(bdx, bdy, cdx, cdy))
	det.Add(det, ratMul(lift(bdx, bdy), ratCross(cdx, cdy, adx, ady)))
	det.Add(det, ratMul(lift(cdx, cdy), ratCross(adx, ady, bdx, bdy)))
	return det.Sign()
}
