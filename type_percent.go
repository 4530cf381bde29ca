package tradeledger

import (
	"fmt"
	"math"
)

// Percent is a percentage, 5 means 5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// percentOf returns part/whole*100, zero when whole is zero.
func percentOf(part, whole Money) Percent {
	return Percent(100 * part.Ratio(whole))
}
