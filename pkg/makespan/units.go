/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package makespan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	GFLOP = 1000.0 * 1000.0 * 1000.0
	TFLOP = 1000.0 * GFLOP
	MBYTE = 1000.0 * 1000.0
	GBYTE = 1000.0 * MBYTE
)

var quantityPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)\s*([A-Za-z]*)$`)

var prefixes = map[string]float64{
	"":   1,
	"k":  1e3,
	"K":  1e3,
	"M":  1e6,
	"G":  1e9,
	"T":  1e12,
	"P":  1e15,
	"E":  1e18,
	"Ki": 1 << 10,
	"Mi": 1 << 20,
	"Gi": 1 << 30,
	"Ti": 1 << 40,
	"Pi": 1 << 50,
	"Ei": 1 << 60,
}

func splitQuantity(s string) (float64, string, error) {
	match := quantityPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, "", errors.Errorf("malformed quantity %q", s)
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", errors.Wrapf(err, "malformed quantity %q", s)
	}

	return value, match[2], nil
}

func scale(value float64, prefix, input string) (float64, error) {
	multiplier, ok := prefixes[prefix]
	if !ok {
		return 0, errors.Errorf("unknown unit prefix %q in %q", prefix, input)
	}

	return value * multiplier, nil
}

// ParseComputeSpeed parses a flop rate such as "100Gf" or "1.5Tflops" into
// flop/s. A bare number is taken as flop/s.
func ParseComputeSpeed(s string) (float64, error) {
	value, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}

	switch {
	case unit == "":
		return value, nil
	case strings.HasSuffix(unit, "flops"):
		return scale(value, strings.TrimSuffix(unit, "flops"), s)
	case strings.HasSuffix(unit, "f"):
		return scale(value, strings.TrimSuffix(unit, "f"), s)
	}

	return 0, errors.Errorf("unknown compute speed unit in %q", s)
}

// ParseBandwidth parses a bandwidth such as "100MBps" (bytes) or "80kbps"
// (bits) into bytes per second. A bare number is taken as bytes per second.
func ParseBandwidth(s string) (float64, error) {
	value, unit, err := splitQuantity(s)
	if err != nil {
		return 0, err
	}

	switch {
	case unit == "":
		return value, nil
	case strings.HasSuffix(unit, "Bps"):
		return scale(value, strings.TrimSuffix(unit, "Bps"), s)
	case strings.HasSuffix(unit, "bps"):
		bits, err := scale(value, strings.TrimSuffix(unit, "bps"), s)
		return bits / 8, err
	}

	return 0, errors.Errorf("unknown bandwidth unit in %q", s)
}
