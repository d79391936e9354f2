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

package results

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

const (
	realColumns  = 6
	modelColumns = 8

	// Leading literal of the first column in the real results header.
	headerPrefix = "app"
)

const (
	colApplication = iota
	colTaskCount
	colDataSize
	colWorkloadType
	colRealDuration
	colMachine
)

const (
	modelColTaskCount = 1
	modelColDataSize  = 2
	modelColEstimateA = 4
	modelColEstimateC = 6
)

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader
}

var modelColumnNames = [modelColumns]string{
	"application", "task_count", "data_size", "workload_type",
	"estimate_a", "estimate_b", "estimate_c", "machine",
}

// stripLine drops whitespace around the whole row. Whitespace next to inner
// separators belongs to the field.
func stripLine(row []string) {
	row[0] = strings.TrimLeftFunc(row[0], unicode.IsSpace)
	last := len(row) - 1
	row[last] = strings.TrimRightFunc(row[last], unicode.IsSpace)
}

// isHeader reports whether a row is the column header of the real results
// file. A data row for an application whose name starts with the header
// prefix still carries an integer task count, which tells the two apart.
func isHeader(row []string) bool {
	if !strings.HasPrefix(row[colApplication], headerPrefix) {
		return false
	}
	if len(row) <= colTaskCount {
		return true
	}

	_, err := common.ParseCount(row[colTaskCount])
	return err != nil
}

// ParseRealResults reads measured durations. Header rows and rows with an
// empty duration are skipped; every other malformed row is a *ParseError.
// The returned records carry sentinel estimates.
func ParseRealResults(r io.Reader, name string) ([]*common.Record, error) {
	log.Debugf("Parsing real results: %s", name)

	reader := newCSVReader(r)

	var records []*common.Record
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		line, _ := reader.FieldPos(0)
		stripLine(row)

		if isHeader(row) {
			log.Tracef("Skipping header at %s:%d", name, line)
			continue
		}
		if len(row) <= colRealDuration {
			return nil, &ParseError{File: name, Line: line,
				Err: errors.Errorf("expected %d columns, got %d", realColumns, len(row))}
		}
		if row[colRealDuration] == "" {
			log.Tracef("Skipping row without real duration at %s:%d", name, line)
			continue
		}
		if len(row) < realColumns {
			return nil, &ParseError{File: name, Line: line,
				Err: errors.Errorf("expected %d columns, got %d", realColumns, len(row))}
		}

		record, parseErr := parseRealRow(row)
		if parseErr != nil {
			parseErr.File, parseErr.Line = name, line
			return nil, parseErr
		}

		records = append(records, record)
	}

	log.Debugf("Parsed %d real measurements from %s", len(records), name)

	return records, nil
}

func parseRealRow(row []string) (*common.Record, *ParseError) {
	taskCount, err := common.ParseCount(row[colTaskCount])
	if err != nil {
		return nil, &ParseError{Column: "task_count", Err: err}
	}
	dataSize, err := common.ParseCount(row[colDataSize])
	if err != nil {
		return nil, &ParseError{Column: "data_size", Err: err}
	}
	duration, err := common.ParseDuration(row[colRealDuration])
	if err != nil {
		return nil, &ParseError{Column: "real_duration", Err: err}
	}

	return &common.Record{
		RecordKey: common.RecordKey{
			Application:  row[colApplication],
			TaskCount:    taskCount,
			DataSize:     dataSize,
			WorkloadType: row[colWorkloadType],
			Machine:      row[colMachine],
		},
		RealDuration: duration,
	}, nil
}

// modelRowReader feeds gocsv with rows cut to the model columns, rejecting
// short rows and malformed numbers with their line number.
type modelRowReader struct {
	*csv.Reader

	name string
	err  error
}

func (r *modelRowReader) Read() ([]string, error) {
	row, err := r.Reader.Read()
	if err != nil {
		return nil, err
	}
	stripLine(row)
	line, _ := r.FieldPos(0)

	if len(row) < modelColumns {
		r.err = &ParseError{File: r.name, Line: line,
			Err: errors.Errorf("expected %d columns, got %d", modelColumns, len(row))}
		return nil, r.err
	}
	row = row[:modelColumns]

	if parseErr := validateModelRow(row); parseErr != nil {
		parseErr.File, parseErr.Line = r.name, line
		r.err = parseErr
		return nil, r.err
	}

	return row, nil
}

func validateModelRow(row []string) *ParseError {
	for i, value := range row {
		var err error
		switch {
		case i == modelColTaskCount || i == modelColDataSize:
			_, err = common.ParseCount(value)
		case i >= modelColEstimateA && i <= modelColEstimateC:
			_, err = common.ParseDuration(value)
		}
		if err != nil {
			return &ParseError{Column: modelColumnNames[i], Err: err}
		}
	}

	return nil
}

func (r *modelRowReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return rows, nil
			}
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ParseModelResults reads the headerless model estimates file.
func ParseModelResults(r io.Reader, name string) ([]common.ModelEstimate, error) {
	log.Debugf("Parsing model results: %s", name)

	reader := &modelRowReader{Reader: newCSVReader(r), name: name}

	var estimates []common.ModelEstimate
	err := gocsv.UnmarshalCSVWithoutHeaders(reader, &estimates)
	if reader.err != nil {
		return nil, reader.err
	}
	if err == gocsv.ErrEmptyCSVFile {
		log.Warnf("Model results file %s is empty", name)
		return nil, nil
	}
	if err != nil {
		return nil, &ParseError{File: name, Err: err}
	}

	log.Debugf("Parsed %d model estimates from %s", len(estimates), name)

	return estimates, nil
}
