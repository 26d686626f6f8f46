package main

import (
	"fmt"
	"os"

	"github.com/mailru/easyjson/jwriter"
	"github.com/tidwall/gjson"

	"github.com/TomTonic/xorshift/internal/bench"
)

// result is the outcome of one generator in one benchmark.
type result struct {
	Bench     string
	Generator string
	MedianNs  float64
	Versus    []bench.Comparison // empty for the baseline
}

// report is the JSON document written by -report and read back by -baseline.
type report struct {
	Seed    uint64
	Count   int
	Trials  int64
	P       float64
	Results []result
}

func (c *result) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"bench":`)
	w.String(c.Bench)
	w.RawString(`,"generator":`)
	w.String(c.Generator)
	w.RawString(`,"median_ns":`)
	w.Float64(c.MedianNs)
	w.RawString(`,"versus":[`)
	for i, v := range c.Versus {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"speedup":`)
		w.Float64(v.Speedup)
		w.RawString(`,"confidence":`)
		w.Float64(v.Confidence)
		w.RawByte('}')
	}
	w.RawString(`]}`)
}

func (r *report) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"seed":`)
	w.Uint64(r.Seed)
	w.RawString(`,"count":`)
	w.Int(r.Count)
	w.RawString(`,"n":`)
	w.Int64(r.Trials)
	w.RawString(`,"p":`)
	w.Float64(r.P)
	w.RawString(`,"results":[`)
	for i := range r.Results {
		if i > 0 {
			w.RawByte(',')
		}
		r.Results[i].MarshalEasyJSON(w)
	}
	w.RawString(`]}`)
}

func writeReport(path string, r *report) error {
	w := jwriter.Writer{}
	r.MarshalEasyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// readBaseline returns the median nanoseconds per value of a previous report,
// keyed by benchmark and generator name.
func readBaseline(path string) (map[[2]string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: not a valid JSON document", path)
	}
	medians := make(map[[2]string]float64)
	for _, r := range gjson.GetBytes(data, "results").Array() {
		key := [2]string{r.Get("bench").String(), r.Get("generator").String()}
		medians[key] = r.Get("median_ns").Float()
	}
	return medians, nil
}
