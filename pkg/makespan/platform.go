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
	"strings"

	"github.com/pkg/errors"
)

type Platform struct {
	ComputeSpeedPerCore float64 // flop/s
	IOReadSpeedPerNode  float64 // B/s
	IOWriteSpeedPerNode float64 // B/s
}

func (p Platform) validate() error {
	if p.ComputeSpeedPerCore <= 0 || p.IOReadSpeedPerNode <= 0 || p.IOWriteSpeedPerNode <= 0 {
		return errors.Errorf("platform speeds must be positive: %+v", p)
	}

	return nil
}

// Values are from Top500 and IO500.
var builtinPlatforms = map[string]Platform{
	"summit": {
		ComputeSpeedPerCore: 148600.0 * TFLOP / 2414592,
		IOReadSpeedPerNode:  1788.32 * GBYTE / 504,
		IOWriteSpeedPerNode: 2158.70 * GBYTE / 504,
	},
}

// ParsePlatform accepts either <per_core_flops>:<per_node_io_read_bw>:<per_node_io_write_bw>,
// e.g. "200Gf:100MBps:80kbps", or the name of a platform. Named platforms
// from presets, in the same colon form, take precedence over built-in ones.
func ParsePlatform(spec string, presets map[string]string) (Platform, error) {
	if !strings.Contains(spec, ":") {
		if preset, ok := presets[spec]; ok {
			p, err := ParsePlatform(preset, nil)
			return p, errors.Wrapf(err, "platform %s", spec)
		}
		if p, ok := builtinPlatforms[spec]; ok {
			return p, nil
		}

		return Platform{}, errors.Errorf("invalid platform specification %s", spec)
	}

	tokens := strings.Split(spec, ":")
	if len(tokens) != 3 {
		return Platform{}, errors.Errorf("invalid platform specification %s", spec)
	}

	var (
		p   Platform
		err error
	)
	if p.ComputeSpeedPerCore, err = ParseComputeSpeed(tokens[0]); err != nil {
		return Platform{}, err
	}
	if p.IOReadSpeedPerNode, err = ParseBandwidth(tokens[1]); err != nil {
		return Platform{}, err
	}
	if p.IOWriteSpeedPerNode, err = ParseBandwidth(tokens[2]); err != nil {
		return Platform{}, err
	}

	return p, p.validate()
}
