package sjson

import (
	"math"
	"strconv"
)

const dblEpsilon = 2.220446049250313e-16

// parseNumber accumulates an integer mantissa, an optional fractional
// part tracked as a negative power-of-ten scale, and an optional signed
// exponent, then combines them as sign * mantissa * 10^(scale+exp).
func (p *parser) parseNumber() (NodeID, error) {
	var (
		n        float64
		sign     = 1.0
		scale    = 0
		subscale = 0
		signsub  = 1
		integral = true
	)
	data := p.data
	if p.pos < len(data) && data[p.pos] == '-' {
		sign = -1
		p.pos++
	}
	if p.pos < len(data) && data[p.pos] == '0' {
		p.pos++
	}
	for p.pos < len(data) && data[p.pos] >= '0' && data[p.pos] <= '9' {
		n = n*10 + float64(data[p.pos]-'0')
		p.pos++
	}
	if p.pos < len(data) && data[p.pos] == '.' {
		integral = false
		p.pos++
		for p.pos < len(data) && data[p.pos] >= '0' && data[p.pos] <= '9' {
			n = n*10 + float64(data[p.pos]-'0')
			scale--
			p.pos++
		}
	}
	if p.pos < len(data) && (data[p.pos] == 'e' || data[p.pos] == 'E') {
		integral = false
		p.pos++
		if p.pos < len(data) && data[p.pos] == '+' {
			p.pos++
		} else if p.pos < len(data) && data[p.pos] == '-' {
			signsub = -1
			p.pos++
		}
		for p.pos < len(data) && data[p.pos] >= '0' && data[p.pos] <= '9' {
			subscale = subscale*10 + int(data[p.pos]-'0')
			p.pos++
		}
	}

	n = sign * n * math.Pow(10, float64(scale+subscale*signsub))

	id := p.newNode(TypeNumber)
	nd := p.doc.at(id)
	nd.num = n
	nd.integral = integral
	return id, nil
}

// appendNumber renders a number. Values within machine epsilon of an
// in-range integer render as a plain integer; integral doubles render
// with no fraction digits; very small or very large magnitudes use
// scientific notation; everything else uses fixed notation.
func appendNumber(dst []byte, d float64) []byte {
	if d >= math.MinInt64 && d <= math.MaxInt64 && math.Abs(float64(int64(d))-d) <= dblEpsilon {
		return strconv.AppendInt(dst, int64(d), 10)
	}
	switch {
	case math.Abs(math.Floor(d)-d) <= dblEpsilon:
		return strconv.AppendFloat(dst, d, 'f', 0, 64)
	case math.Abs(d) < 1e-6 || math.Abs(d) > 1e9:
		return strconv.AppendFloat(dst, d, 'e', 6, 64)
	default:
		return strconv.AppendFloat(dst, d, 'f', 6, 64)
	}
}
