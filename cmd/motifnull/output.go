// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/motifnull/ensemble"
)

// jsonFloat encodes ±Inf and NaN as strings, which encoding/json rejects
// as numbers.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	case math.IsInf(x, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

type failureJSON struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type reportJSON struct {
	RunID         string               `json:"run_id"`
	Members       int                  `json:"members"`
	Failures      []failureJSON        `json:"failures"`
	SuccessRatios []float64            `json:"success_ratios"`
	Observed      map[string]float64   `json:"observed"`
	ZScores       map[string]jsonFloat `json:"zscores"`
}

func newReportJSON(rep *ensemble.Report) reportJSON {
	out := reportJSON{
		RunID:         rep.RunID.String(),
		Members:       len(rep.Members),
		Failures:      []failureJSON{},
		SuccessRatios: rep.SuccessRatios(),
		Observed:      rep.Observed,
		ZScores:       make(map[string]jsonFloat, len(rep.ZScores)),
	}
	for _, f := range rep.Failures {
		out.Failures = append(out.Failures, failureJSON{Index: f.Index, Error: f.Err.Error()})
	}
	for k, z := range rep.ZScores {
		out.ZScores[k] = jsonFloat(z)
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
