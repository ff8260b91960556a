// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteRuntimeMemoryCSV writes one row per record with the aligner
// name and the unpacked runtime and memory measurements, for
// spreadsheet use outside the charting pipeline.
func WriteRuntimeMemoryCSV(records []*Record, w io.Writer) error {
	columns := []struct {
		name string
		of   func(*Record) string
	}{
		{"aligner", func(r *Record) string { return r.Identity.Aligner }},
		{"runtime_seconds", func(r *Record) string { return strof(r.Stats.Runtime) }},
		{"memory_bytes", func(r *Record) string { return strof(r.Stats.Memory) }},
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = c.of(r)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func strof(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
