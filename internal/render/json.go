// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"
	"math/big"

	"github.com/katalvlaran/ratsolve/gauss"
)

type jsonEntry struct {
	Column       int      `json:"column"`
	Kind         string   `json:"kind"`
	Value        string   `json:"value,omitempty"`
	Coefficients []string `json:"coefficients,omitempty"`
	Constant     string   `json:"constant,omitempty"`
}

type jsonResult struct {
	Name    string      `json:"name,omitempty"`
	Status  string      `json:"status"`
	Rank    int         `json:"rank"`
	Free    []int       `json:"free"`
	Entries []jsonEntry `json:"entries"`
	Values  []string    `json:"values,omitempty"`
}

type jsonInconsistent struct {
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

// JSON writes res as one indented JSON object. Rationals are strings in
// lowest terms ("9/2") so no precision is lost.
func JSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if res.Report == nil {
		return enc.Encode(jsonInconsistent{Name: res.Name, Status: StatusInconsistent})
	}

	sol := res.Report.Solution
	out := jsonResult{
		Name:    res.Name,
		Status:  res.Status(),
		Rank:    res.Report.Rank,
		Free:    sol.FreeColumns(),
		Entries: make([]jsonEntry, len(sol)),
	}
	for col, e := range sol {
		out.Entries[col] = toJSONEntry(col, e)
	}
	if res.Values != nil {
		out.Values = ratStrings(res.Values)
	}

	return enc.Encode(out)
}

func toJSONEntry(col int, e gauss.Entry) jsonEntry {
	je := jsonEntry{Column: col, Kind: e.Kind.String()}
	switch e.Kind {
	case gauss.Fixed:
		je.Value = e.Value.RatString()
	case gauss.Parametric:
		je.Coefficients = ratStrings(e.Coefficients)
		je.Constant = e.Constant.RatString()
	}

	return je
}

func ratStrings(vals []*big.Rat) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.RatString()
	}

	return out
}
