// Command xorshift-bench times the xorshift generators against math/rand/v2 and reports,
// with bootstrap confidence, how much faster they fill a batch of uniform and binomial values.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/TomTonic/xorshift"
	"github.com/TomTonic/xorshift/internal/bench"
)

type config struct {
	iters    int
	samples  int
	count    int
	trials   int64
	p        float64
	seed     uint64
	reps     uint64
	logLevel string
	report   string
	baseline string
}

func parseFlags() config {
	var conf config
	flag.IntVar(&conf.iters, "iters", 10, "calls per timed sample")
	flag.IntVar(&conf.samples, "samples", 31, fmt.Sprintf("timed samples per contestant (at least %d)", bench.MinimumDataPoints))
	flag.IntVar(&conf.count, "count", 131072, "values drawn per call")
	flag.Int64Var(&conf.trials, "n", 50, "binomial trials")
	flag.Float64Var(&conf.p, "p", 0.25, "binomial success probability")
	flag.Uint64Var(&conf.seed, "seed", 0, "generator seed, 0 seeds from operating system entropy")
	flag.Uint64Var(&conf.reps, "reps", 10000, "bootstrap replicates")
	flag.StringVar(&conf.logLevel, "loglevel", "info", "log level [debug,verbose,info,warn,error,quiet]")
	flag.StringVar(&conf.report, "report", "", "write the results as JSON to this file")
	flag.StringVar(&conf.baseline, "baseline", "", "compare the medians with a report of a previous run")
	flag.Parse()
	return conf
}

// contestant fills a batch of conf.count values once.
type contestant struct {
	name string
	run  func() error
}

func main() {
	conf := parseFlags()
	logInit(conf)
	if conf.samples < bench.MinimumDataPoints || conf.iters < 1 || conf.count < 0 || conf.reps < 1 {
		log.Fatal().Int("samples", conf.samples).Int("iters", conf.iters).Int("count", conf.count).Uint64("reps", conf.reps).
			Msgf("need -samples >= %d, -iters >= 1, -count >= 0 and -reps >= 1", bench.MinimumDataPoints)
	}
	if ev := log.Debug(); ev.Enabled() {
		ev.Int64("precision_ns", bench.Precision()).Msg("timer calibrated")
	}

	rep := report{Seed: conf.seed, Count: conf.count, Trials: conf.trials, P: conf.p}
	for _, run := range []func(config) ([]result, error){runUniform, runBinomial} {
		results, err := run(conf)
		if err != nil {
			log.Error().Err(err).Msg("benchmark failed")
			os.Exit(1)
		}
		rep.Results = append(rep.Results, results...)
	}

	if conf.baseline != "" {
		if err := compareBaseline(conf.baseline, rep.Results); err != nil {
			log.Error().Err(err).Str("file", conf.baseline).Msg("cannot read baseline")
			os.Exit(1)
		}
	}
	if conf.report != "" {
		if err := writeReport(conf.report, &rep); err != nil {
			log.Error().Err(err).Str("file", conf.report).Msg("cannot write report")
			os.Exit(1)
		}
		log.Info().Str("file", conf.report).Msg("report written")
	}
}

func compareBaseline(path string, results []result) error {
	medians, err := readBaseline(path)
	if err != nil {
		return err
	}
	for _, r := range results {
		prev, ok := medians[[2]string{r.Bench, r.Generator}]
		if !ok || prev <= 0 {
			log.Warn().Str("bench", r.Bench).Str("generator", r.Generator).Msg("not in baseline")
			continue
		}
		log.Info().Str("bench", r.Bench).Str("generator", r.Generator).
			Float64("median_ns", r.MedianNs).Float64("baseline_ns", prev).
			Float64("change", r.MedianNs/prev-1.0).Msg("vs baseline")
	}
	return nil
}

func seeds(conf config) []uint64 {
	if conf.seed == 0 {
		return nil
	}
	return []uint64{conf.seed}
}

func baselineSource(conf config) *rand.Rand {
	if conf.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(conf.seed, conf.seed))
}

func runUniform(conf config) ([]result, error) {
	var contestants []contestant
	for _, alg := range []xorshift.Algorithm{xorshift.Xoroshiro128Plus, xorshift.Xorshift128Plus} {
		g := xorshift.New(alg, xorshift.View, seeds(conf)...)
		contestants = append(contestants, contestant{
			name: alg.String(),
			run: func() error {
				_, err := g.Uniform(conf.count)
				return err
			},
		})
	}
	r := baselineSource(conf)
	out := make([]float64, conf.count)
	baseline := contestant{
		name: "math/rand/v2",
		run: func() error {
			for i := range out {
				out[i] = r.Float64()
			}
			return nil
		},
	}
	return compete(conf, "uniform", contestants, baseline)
}

func runBinomial(conf config) ([]result, error) {
	var contestants []contestant
	for _, alg := range []xorshift.Algorithm{xorshift.Xoroshiro128Plus, xorshift.Xorshift128Plus} {
		g := xorshift.New(alg, xorshift.View, seeds(conf)...)
		contestants = append(contestants, contestant{
			name: alg.String(),
			run: func() error {
				_, err := g.Binomial(conf.trials, conf.p, conf.count)
				return err
			},
		})
	}
	// math/rand/v2 has no binomial sampler; count successes of n Bernoulli trials.
	r := baselineSource(conf)
	out := make([]int64, conf.count)
	baseline := contestant{
		name: "math/rand/v2",
		run: func() error {
			for i := range out {
				var k int64
				for range conf.trials {
					if r.Float64() < conf.p {
						k++
					}
				}
				out[i] = k
			}
			return nil
		},
	}
	return compete(conf, "binomial", contestants, baseline)
}

// measure returns conf.samples timings of conf.iters calls each, in nanoseconds per value.
func measure(conf config, c contestant) ([]float64, error) {
	perValue := float64(conf.iters) * float64(max(conf.count, 1))
	timings := make([]float64, 0, conf.samples)
	for range conf.samples {
		start := bench.Now()
		for range conf.iters {
			if err := c.run(); err != nil {
				return nil, fmt.Errorf("%s: %w", c.name, err)
			}
		}
		timings = append(timings, float64(bench.Since(start, bench.Now()))/perValue)
	}
	return timings, nil
}

func compete(conf config, what string, contestants []contestant, baseline contestant) ([]result, error) {
	base, err := measure(conf, baseline)
	if err != nil {
		return nil, err
	}
	results := []result{{Bench: what, Generator: baseline.name, MedianNs: bench.Median(base)}}
	log.Info().Str("bench", what).Str("generator", baseline.name).
		Float64("median_ns", results[0].MedianNs).Msg("baseline")

	for _, c := range contestants {
		timings, err := measure(conf, c)
		if err != nil {
			return nil, err
		}
		mean, _, stddev := bench.Statistics(timings)
		log.Debug().Str("bench", what).Str("generator", c.name).
			Float64("mean_ns", mean).Float64("stddev_ns", stddev).Msg("timings")

		versus, err := bench.Compare(timings, base, []float64{0.0, 0.1, 0.25, 0.5}, conf.reps, seeds(conf)...)
		if err != nil {
			return nil, err
		}
		r := result{Bench: what, Generator: c.name, MedianNs: bench.Median(timings), Versus: versus}
		ev := log.Info().Str("bench", what).Str("generator", c.name).Float64("median_ns", r.MedianNs)
		for _, v := range versus {
			ev = ev.Float64(fmt.Sprintf("conf_speedup_%.0f%%", v.Speedup*100), v.Confidence)
		}
		ev.Msgf("vs %s", baseline.name)
		results = append(results, r)
	}
	return results, nil
}
