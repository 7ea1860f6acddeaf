// SPDX-License-Identifier: MIT
// Package: relation
//
// csv.go - headered pairwise-weight CSV ingestion and export.
//
// Format:
//   - Line 1: participant names, comma separated; its length fixes n.
//   - Line r+2: the weights of participant r, exactly n fields.
//   - Only fields above the diagonal (column i > r) are read; they are
//     mirrored into w[i][r]. Fields on or below the diagonal are ignored, so a
//     file may carry a full symmetric matrix or just its upper triangle.
//   - Missing trailing rows leave their (already mirrored) entries untouched.
//
// Errors are wrapped with github.com/pkg/errors; the sentinels from errors.go
// stay matchable with errors.Is.

package relation

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadCSV parses the headered weight format into a validated Matrix and the
// parallel name list.
//
// Complexity: O(n²) time and space.
func ReadCSV(r io.Reader) (Matrix, []string, error) {
	var cr = csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported with our own sentinel
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrEmpty
	} else if err != nil {
		return nil, nil, errors.Wrap(err, "reading header")
	}

	var (
		n     = len(header)
		names = make([]string, n)
		m     = New(n)
		i     int
	)
	for i = 0; i < n; i++ {
		names[i] = strings.TrimSpace(header[i])
	}

	var (
		row    []string
		rowNum int
		w      int
	)
	for rowNum = 0; ; rowNum++ {
		row, err = cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, errors.Wrapf(err, "reading row %d", rowNum)
		}
		if len(row) != n {
			return nil, nil, errors.Wrapf(ErrRaggedRow, "row %d has %d fields, want %d", rowNum, len(row), n)
		}
		if rowNum >= n {
			return nil, nil, errors.Wrapf(ErrRaggedRow, "row %d exceeds participant count %d", rowNum, n)
		}
		for i = rowNum + 1; i < n; i++ {
			if w, err = strconv.Atoi(strings.TrimSpace(row[i])); err != nil {
				return nil, nil, errors.Wrapf(ErrBadWeight, "row %d column %d: %q", rowNum, i, row[i])
			}
			if w < 0 {
				return nil, nil, errors.Wrapf(ErrNegativeWeight, "row %d column %d: %d", rowNum, i, w)
			}
			m.Connect(rowNum, i, w)
		}
	}

	if err = ValidateNames(names, n); err != nil {
		return nil, nil, errors.WithMessage(err, "header")
	}

	return m, names, nil
}

// WriteCSV emits m in the format accepted by ReadCSV. A nil names slice
// writes decimal indices as the header.
//
// Complexity: O(n²).
func WriteCSV(w io.Writer, m Matrix, names []string) error {
	if err := ValidateNames(names, len(m)); err != nil {
		return err
	}

	var (
		cw     = csv.NewWriter(w)
		header = make([]string, len(m))
		row    = make([]string, len(m))
		i, j   int
	)
	for i = range header {
		if names != nil {
			header[i] = names[i]
		} else {
			header[i] = strconv.Itoa(i)
		}
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for i = range m {
		for j = range m[i] {
			row[j] = strconv.Itoa(m[i][j])
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flushing csv")
}
