// Package normalize canonicalizes taxpayer identification numbers (ИНН)
// coming from imported price lists.
package normalize

// INN strips every non-digit character from raw and validates the checksum of
// the result. An empty result means the INN is absent: normalized is nil and
// invalid is false (absent is not invalid). A non-empty result is kept even
// when the checksum fails, so near-matches stay searchable, but invalid is
// reported as true.
func INN(raw string) (normalized *string, invalid bool) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return nil, false
	}
	s := string(digits)
	return &s, !validINN(digits)
}

// Checksum weights published by the tax service. A 10-digit INN carries one
// check digit, a 12-digit INN carries two.
var (
	weights10 = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	weights11 = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	weights12 = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
)

func validINN(digits []byte) bool {
	switch len(digits) {
	case 10:
		return checkDigit(digits, weights10) == int(digits[9]-'0')
	case 12:
		return checkDigit(digits, weights11) == int(digits[10]-'0') &&
			checkDigit(digits, weights12) == int(digits[11]-'0')
	default:
		return false
	}
}

func checkDigit(digits []byte, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += w * int(digits[i]-'0')
	}
	return sum % 11 % 10
}
