package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SalaryKind tags the parsed form of a salary string.
type SalaryKind int

const (
	// SalaryText is a free-form string the parser could not interpret.
	SalaryText SalaryKind = iota
	// SalaryAmount is a single value, held in LPA (lakhs per annum).
	SalaryAmount
	// SalaryBand is a min-max range, held in LPA.
	SalaryBand
)

// Salary is the tagged-variant result of parsing a salary string. Backends
// and users write salaries in several shapes (plain rupee amounts, rupee
// ranges, "10-15lpa" bands, arbitrary text); parsing once into a variant
// lets every consumer format exhaustively instead of re-sniffing formats.
type Salary struct {
	Kind     SalaryKind
	Min, Max float64 // LPA; equal for SalaryAmount
	Raw      string
}

var (
	digitsRe    = regexp.MustCompile(`^\d+$`)
	rupeeBandRe = regexp.MustCompile(`^(\d+)-(\d+)$`)
	lpaValueRe  = regexp.MustCompile(`^\d+(\.\d+)?$`)
	lpaBandRe   = regexp.MustCompile(`^\d+(\.\d+)?-\d+(\.\d+)?$`)
)

// ParseRupees interprets a backend salary value: plain digits are annual
// rupees, "min-max" digits are a rupee range, strings containing "lpa" are
// already LPA bands. Anything else stays raw text.
func ParseRupees(s string) Salary {
	s = strings.TrimSpace(s)
	if s == "" {
		return Salary{Kind: SalaryText, Raw: ""}
	}

	if digitsRe.MatchString(s) {
		v, _ := strconv.ParseFloat(s, 64)
		lpa := v / 100000
		return Salary{Kind: SalaryAmount, Min: lpa, Max: lpa, Raw: s}
	}

	if m := rupeeBandRe.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return Salary{Kind: SalaryBand, Min: lo / 100000, Max: hi / 100000, Raw: s}
	}

	if strings.Contains(strings.ToLower(s), "lpa") {
		return parseLpaBand(s)
	}

	return Salary{Kind: SalaryText, Raw: s}
}

// ParseExpectation interprets a user-entered salary expectation, which is
// conventionally already in LPA: "12", "10-15" or "10-15lpa".
func ParseExpectation(s string) Salary {
	s = strings.TrimSpace(s)
	if s == "" {
		return Salary{Kind: SalaryText, Raw: ""}
	}

	val := strings.ToLower(s)
	if strings.Contains(val, "lpa") {
		return parseLpaBand(s)
	}
	if lpaBandRe.MatchString(val) {
		parts := strings.SplitN(val, "-", 2)
		lo, _ := strconv.ParseFloat(parts[0], 64)
		hi, _ := strconv.ParseFloat(parts[1], 64)
		return Salary{Kind: SalaryBand, Min: lo, Max: hi, Raw: s}
	}
	if lpaValueRe.MatchString(val) {
		v, _ := strconv.ParseFloat(val, 64)
		return Salary{Kind: SalaryAmount, Min: v, Max: v, Raw: s}
	}
	return Salary{Kind: SalaryText, Raw: s}
}

func parseLpaBand(s string) Salary {
	body := strings.ReplaceAll(strings.ToLower(s), "lpa", "")
	body = strings.TrimSpace(body)
	parts := strings.SplitN(body, "-", 2)

	lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if errLo != nil {
		return Salary{Kind: SalaryText, Raw: s}
	}
	if len(parts) == 2 {
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errHi != nil {
			return Salary{Kind: SalaryText, Raw: s}
		}
		return Salary{Kind: SalaryBand, Min: lo, Max: hi, Raw: s}
	}
	return Salary{Kind: SalaryAmount, Min: lo, Max: lo, Raw: s}
}

// fmtLpa renders an LPA value without a trailing ".0" for whole numbers.
func fmtLpa(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatINR renders the salary as an Indian-rupee LPA string. Empty input
// renders as "-"; uninterpreted text passes through unchanged.
func (s Salary) FormatINR() string {
	switch s.Kind {
	case SalaryAmount:
		return fmt.Sprintf("₹%s LPA", fmtLpa(s.Min))
	case SalaryBand:
		return fmt.Sprintf("₹%s-%s LPA", fmtLpa(s.Min), fmtLpa(s.Max))
	default:
		if s.Raw == "" {
			return "-"
		}
		return s.Raw
	}
}

// FormatBand renders a user-entered expectation with an " LPA" suffix and no
// currency sign, leaving uninterpreted text unchanged.
func (s Salary) FormatBand() string {
	switch s.Kind {
	case SalaryAmount:
		return fmt.Sprintf("%s LPA", fmtLpa(s.Min))
	case SalaryBand:
		return fmt.Sprintf("%s-%s LPA", fmtLpa(s.Min), fmtLpa(s.Max))
	default:
		if s.Raw == "" {
			return "-"
		}
		return s.Raw
	}
}
