// Command sipinfo prints spectra of SIP relaxation models.
//
// Usage:
//
//	sipinfo [flags] [model-name ...]
//
// Without arguments it prints the Cole-Cole resistivity spectrum.
//
// Examples:
//
//	sipinfo -m 0.3 -tau 0.01 -c 0.5 cole-cole
//	sipinfo -fmin 0.001 -fmax 1e4 -n 30 debye warburg
//	sipinfo -decomp -ntau 40
//	sipinfo -config survey.yaml -n 40
//	sipinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sip/sip/core"
	"github.com/cwbudde/algo-sip/sip/forward"
	"github.com/cwbudde/algo-sip/sip/grid"
	"github.com/cwbudde/algo-sip/sip/relax"
	"github.com/cwbudde/algo-sip/sip/spectrum"
	"github.com/cwbudde/algo-sip/stats/relaxation"
)

// modelEntry is one printable model. Conductivity spectra report +angle,
// impedances -angle.
type modelEntry struct {
	name         string
	desc         string
	conductivity bool
	eval         func(f []float64, p params) []complex128
}

var registry = []modelEntry{
	{"cole-cole", "Cole-Cole resistivity (Pelton)", false, func(f []float64, p params) []complex128 {
		return relax.ColeColeRho(f, p.Rho, p.M, p.Tau, p.C, p.A)
	}},
	{"sigma", "Cole-Cole conductivity, tau converted", true, func(f []float64, p params) []complex128 {
		return relax.ColeColeSigma(f, 1/p.Rho, p.M, relax.TauRhoToTauSigma(p.Tau, p.M, p.C), p.C, p.A)
	}},
	{"debye", "single Debye relaxation", false, func(f []float64, p params) []complex128 {
		return scale(relax.DebyeRelaxation(f, p.Tau, p.M), p.Rho)
	}},
	{"warburg", "Warburg relaxation (c=0.5)", false, func(f []float64, p params) []complex128 {
		return scale(relax.WarbugRelaxation(f, p.Tau, p.M), p.Rho)
	}},
	{"davidson", "Cole-Davidson (c=1, exponent a)", false, func(f []float64, p params) []complex128 {
		return relax.ColeDavidson(f, p.Rho, p.M, p.Tau, p.A)
	}},
	{"epsilon", "Cole-Cole permittivity", false, func(f []float64, p params) []complex128 {
		return relax.ColeColeEpsilon(f, p.E0, p.EInf, p.Tau, p.Alpha)
	}},
}

func scale(z []complex128, s float64) []complex128 {
	for i := range z {
		z[i] *= complex(s, 0)
	}
	return z
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// newFlagSet registers the flags on p, using the current values of p as
// defaults.
func newFlagSet(p *params, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sipinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "YAML parameter file (flags override its values)")
	fs.Float64Var(&p.Rho, "rho", p.Rho, "DC resistivity in Ohm*m")
	fs.Float64Var(&p.M, "m", p.M, "chargeability")
	fs.Float64Var(&p.Tau, "tau", p.Tau, "relaxation time in s")
	fs.Float64Var(&p.C, "c", p.C, "Cole-Cole exponent")
	fs.Float64Var(&p.A, "a", p.A, "Cole-Davidson exponent")
	fs.Float64Var(&p.E0, "e0", p.E0, "static permittivity (epsilon model)")
	fs.Float64Var(&p.EInf, "einf", p.EInf, "high-frequency permittivity (epsilon model)")
	fs.Float64Var(&p.Alpha, "alpha", p.Alpha, "Cole-Cole alpha (epsilon model, exponent 1/alpha)")
	fs.Float64Var(&p.FMin, "fmin", p.FMin, "lowest frequency in Hz")
	fs.Float64Var(&p.FMax, "fmax", p.FMax, "highest frequency in Hz")
	fs.IntVar(&p.N, "n", p.N, "number of frequencies")
	fs.IntVar(&p.NTau, "ntau", p.NTau, "number of relaxation times (-decomp)")
	fs.Float64Var(&p.Decades, "decades", p.Decades, "relaxation-time grid extension in decades (-decomp)")
	fs.IntVar(&p.Workers, "workers", p.Workers, "goroutines used to build the Debye kernel (-decomp)")
	fs.Bool("decomp", false, "print the Debye decomposition sensitivity kernel")
	fs.Bool("list", false, "list available model names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sipinfo [flags] [model-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints spectra of SIP relaxation models.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	v, ok := fs.Lookup(name).Value.(flag.Getter)
	if !ok {
		return false
	}
	b, _ := v.Get().(bool)
	return b
}

func run(args []string, stdout, stderr io.Writer) int {
	p := defaultParams()
	fs := newFlagSet(&p, stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Re-parse on top of the file so explicit flags win.
	if path := fs.Lookup("config").Value.String(); path != "" {
		fp, err := loadParams(path)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		p = fp
		fs = newFlagSet(&p, stderr)
		if err := fs.Parse(args); err != nil {
			return 2
		}
	}

	if boolFlag(fs, "list") {
		printList(stdout)
		return 0
	}

	f, err := grid.Frequencies(p.FMin, p.FMax, p.N)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if boolFlag(fs, "decomp") {
		if err := printDecomposition(stdout, f, p); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	names := fs.Args()
	if len(names) == 0 {
		names = p.Models
	}
	if len(names) == 0 {
		names = []string{"cole-cole"}
	}
	entries := resolveEntries(names, stderr)
	if len(entries) == 0 {
		fmt.Fprintf(stderr, "error: no matching models\n")
		return 1
	}

	for _, e := range entries {
		if err := printSpectrum(stdout, e, f, p); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = fmt.Sprintf("%s\t%s", e.name, e.desc)
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintln(tw, n)
	}
	_ = tw.Flush()
}

func resolveEntries(names []string, stderr io.Writer) []modelEntry {
	byName := make(map[string]modelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []modelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown model %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printSpectrum(w io.Writer, e modelEntry, f []float64, p params) error {
	z := e.eval(f, p)
	var phase []float64
	if e.conductivity {
		phase = spectrum.Unwrap(spectrum.Phase(z))
	} else {
		phase = spectrum.Unwrap(spectrum.NegativePhase(z))
	}

	if _, err := fmt.Fprintf(w, "# %s: %s\n", e.name, e.desc); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "f [Hz]\tRe\tIm\tAmplitude\tPhase [mrad]\n")
	fmt.Fprintf(tw, "------\t--\t--\t---------\t------------\n")
	re, im := spectrum.Parts(z)
	amp := spectrum.Amplitude(z)
	for i := range z {
		fmt.Fprintf(tw, "%.4g\t%.6g\t%.6g\t%.6g\t%.3f\n", f[i], re[i], im[i], amp[i], core.RadToMrad(phase[i]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s, err := relaxation.CalculatePhase(f, phase)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "phase peak %.3f mrad at %.4g Hz, half-width %.2f decades\n\n",
		core.RadToMrad(s.Max), s.PeakFrequency, s.WidthDecades)
	return err
}

func printDecomposition(w io.Writer, f []float64, p params) error {
	taus, err := grid.DebyeTaus(f, p.NTau, p.Decades)
	if err != nil {
		return err
	}
	op, err := forward.NewDebyeComplex(f, taus, forward.WithWorkers(p.Workers))
	if err != nil {
		return err
	}

	j := op.Jacobian()
	rows, cols := j.Dims()
	nf := len(f)
	if _, err := fmt.Fprintf(w, "# Debye decomposition kernel: %d x %d (%d frequencies, %d relaxation times)\n", rows, cols, nf, cols); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "tau [s]\t1/(2 pi tau) [Hz]\tpeak f(B) [Hz]\tmax B\n")
	fmt.Fprintf(tw, "-------\t-----------------\t--------------\t-----\n")
	for k, tk := range taus {
		best, bestVal := 0, math.Inf(-1)
		for i := range nf {
			if v := j.At(nf+i, k); v > bestVal {
				best, bestVal = i, v
			}
		}
		fmt.Fprintf(tw, "%.4g\t%.4g\t%.4g\t%.4f\n", tk, relax.CharacteristicFrequency(tk), f[best], bestVal)
	}
	return tw.Flush()
}
