// SPDX-License-Identifier: MIT

package inputs

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parse reads a list of numbers separated by commas and/or whitespace,
// optionally enclosed in one pair of square brackets:
//
//	"5,3,8"   "5 3 8"   "[5, 3, 8]"
//
// Every value must be a finite number. "[]" is the empty list; a blank
// string is an error.
func Parse(s string) ([]float64, error) {
	body := strings.TrimSpace(s)
	bracketed := strings.HasPrefix(body, "[")
	if bracketed {
		if !strings.HasSuffix(body, "]") {
			return nil, errors.Wrapf(ErrParse, "unbalanced bracket in %q", s)
		}
		body = body[1 : len(body)-1]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 && !bracketed {
		return nil, errors.Wrapf(ErrParse, "no values in %q", s)
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrParse, "value %d %q", i, f)
		}
		out[i] = v
	}
	return out, nil
}
