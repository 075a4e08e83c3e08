package usecase

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
)

// isoMinorUnits lists the ISO 4217 currencies whose minor unit is not 2.
// currency.Standard follows CLDR display digits (COP -> 0, ISK -> 0, ...)
// which is not what the gateway expects for amounts.
var isoMinorUnits = map[string]int{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0, "VND": 0, "VUV": 0,
	"XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"CLF": 4, "UYW": 4,
}

// currencyScale is the ISO 4217 minor unit of the currency.
func currencyScale(code string) (int, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	if scale, ok := isoMinorUnits[unit.String()]; ok {
		return scale, nil
	}
	return 2, nil
}

// HumanizeAmount converts a minor-unit amount into the major-unit value the
// gateway expects, e.g. 10000 USD cents -> 100, 500 JPY -> 500.
func HumanizeAmount(amount int64, currencyCode string) (float64, error) {
	scale, err := currencyScale(currencyCode)
	if err != nil {
		return 0, err
	}
	return float64(amount) / math.Pow10(scale), nil
}
