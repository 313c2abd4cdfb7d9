//
// Copyright (c) 2011-2019 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolve

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/willabides/json/internal/jsonh"
)

// Number converts the raw text of a scanned number token into its typed
// value. The scanner has already enforced the RFC 8259 grammar, so text
// is known to be well-formed; isFloat reports whether any of '.', 'e',
// 'E' appeared in it.
//
// Integers widen as needed: values fitting in 32 bits stay 32-bit, then
// 64-bit, then arbitrary precision. Floats beyond IEEE-754 range round
// to an infinity rather than failing.
func Number(text []byte, isFloat bool) (jsonh.Number, error) {
	s := string(text)
	if isFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return jsonh.Number{}, &jsonh.Error{Type: jsonh.SCANNER_ERROR, Problem: "Invalid number: " + s, Cause: err}
		}
		return jsonh.DoubleNumber(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return jsonh.Int32Number(int32(i)), nil
		}
		return jsonh.Int64Number(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		b, ok := new(big.Int).SetString(s, 10)
		if ok {
			return jsonh.BigNumber(b), nil
		}
	}
	return jsonh.Number{}, &jsonh.Error{Type: jsonh.SCANNER_ERROR, Problem: "Invalid number: " + s, Cause: err}
}
