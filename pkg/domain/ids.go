package domain

import (
	"strconv"
	"strings"
	"unicode"

	dErrors "benefitd/pkg/domain-errors"
)

// MaxPrincipalLength bounds identity strings accepted at trust boundaries.
const MaxPrincipalLength = 128

// Principal identifies a caller or a recipient, e.g. a ledger address.
// Construct with ParsePrincipal; the zero value means "no principal".
type Principal string

// ParsePrincipal trims and validates an identity string.
func ParsePrincipal(s string) (Principal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identity is required")
	}
	if len(s) > MaxPrincipalLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identity must be at most 128 characters")
	}
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "identity contains invalid characters")
		}
	}
	return Principal(s), nil
}

func (p Principal) String() string {
	return string(p)
}

func (p Principal) IsNil() bool {
	return p == ""
}

// Height is a block height reported by the height source.
type Height uint64

func (h Height) Uint64() uint64 {
	return uint64(h)
}

// Since returns the number of heights elapsed from earlier to h.
// It saturates at zero when earlier is ahead of h.
func (h Height) Since(earlier Height) uint64 {
	if earlier >= h {
		return 0
	}
	return uint64(h - earlier)
}

// Period identifies a usage billing period, conventionally YYYYMM (202401).
type Period uint32

// ParsePeriod validates a period given as a decimal string.
func ParsePeriod(s string) (Period, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "period must be a positive integer")
	}
	return NewPeriod(v)
}

// NewPeriod validates a numeric period.
func NewPeriod(v uint64) (Period, error) {
	if v == 0 || v > uint64(^uint32(0)) {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "period must be a positive 32-bit integer")
	}
	return Period(v), nil
}

func (p Period) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
