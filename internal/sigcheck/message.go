package sigcheck

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders an amount in its canonical numeric text: the shortest
// decimal that round-trips, with no trailing ".0". Magnitudes at or above 1e21
// or below 1e-6 use exponent notation ("1e+21", "1.5e-7"), matching the
// textual form the ledger service signs.
func FormatAmount(amount float64) string {
	if amount == 0 {
		return "0"
	}

	abs := math.Abs(amount)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(amount, 'e', -1, 64), "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + sign + digits
}

// CanonicalMessage builds the signed transaction text "sender->recipient:amount".
func CanonicalMessage(sender, recipient string, amount float64) string {
	return sender + "->" + recipient + ":" + FormatAmount(amount)
}
