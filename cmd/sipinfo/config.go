package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var errInvalidConfig = errors.New("sipinfo: invalid config")

// params is the model and grid parameter set. Flags override values read
// from a -config file, which override the defaults.
type params struct {
	Rho   float64 `yaml:"rho"`
	M     float64 `yaml:"m"`
	Tau   float64 `yaml:"tau"`
	C     float64 `yaml:"c"`
	A     float64 `yaml:"a"`
	E0    float64 `yaml:"e0"`
	EInf  float64 `yaml:"einf"`
	Alpha float64 `yaml:"alpha"`

	FMin    float64 `yaml:"fmin"`
	FMax    float64 `yaml:"fmax"`
	N       int     `yaml:"n"`
	NTau    int     `yaml:"ntau"`
	Decades float64 `yaml:"decades"`
	Workers int     `yaml:"workers"`

	Models []string `yaml:"models"`
}

func defaultParams() params {
	return params{
		Rho:     100,
		M:       0.2,
		Tau:     0.01,
		C:       0.5,
		A:       1,
		E0:      80,
		EInf:    5,
		Alpha:   1,
		FMin:    0.01,
		FMax:    1e5,
		N:       15,
		NTau:    20,
		Decades: 1,
		Workers: 1,
	}
}

// loadParams reads a YAML parameter file on top of the defaults.
func loadParams(path string) (params, error) {
	p := defaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse config %s: %w: %w", path, errInvalidConfig, err)
	}
	if p.N <= 0 || p.NTau <= 0 {
		return p, fmt.Errorf("%w: n=%d ntau=%d must be > 0", errInvalidConfig, p.N, p.NTau)
	}
	return p, nil
}
