package gear

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// The gateway speaks in decimal dollar strings; everything internal is
// integer cents.

func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseAmountCents accepts "12", "12.3", and "12.34"; more than two decimal
// places or any non-numeric input is rejected.
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var centsPart int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrInvalidAmount
		}
		centsPart, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || centsPart < 0 {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			centsPart *= 10
		}
	}

	if dollars < 0 || strings.HasPrefix(whole, "-") {
		return -(-dollars*100 + centsPart), nil
	}
	return dollars*100 + centsPart, nil
}
