//Package config reads the description of a Lennard-Jones scan from a TOML file.
//Keys missing from the file keep the values of the argon scan.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
	lj "github.com/rmera/ljscan"
)

type Options struct {
	EpsilonEV     float64   `toml:"epsilon_ev"`
	Sigma         float64   `toml:"sigma"`
	Distances     []float64 `toml:"distances"`
	Exponent      int       `toml:"exponent"`
	Places        int       `toml:"places"`
	StrictMinimum bool      `toml:"strict_minimum"`
	Concurrent    bool      `toml:"concurrent"`
}

//Default returns the options for the argon pair scan.
func Default() *Options {
	return &Options{
		EpsilonEV: lj.ArgonEpsilonEV,
		Sigma:     lj.ArgonSigma,
		Distances: lj.ArgonDistances(),
		Exponent:  lj.DefaultExponent,
		Places:    lj.DefaultPlaces,
	}
}

//Load reads the TOML file in path on top of the default options.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return Parse(data)
}

//Parse is like Load, but reads the TOML document from data.
func Parse(data []byte) (*Options, error) {
	o := Default()
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	for k := range raw {
		if !known[k] {
			log.Printf("config: ignoring unknown key %q", k)
		}
	}
	if err := toml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

var known = map[string]bool{
	"epsilon_ev":     true,
	"sigma":          true,
	"distances":      true,
	"exponent":       true,
	"places":         true,
	"strict_minimum": true,
	"concurrent":     true,
}

//Validate checks that the options describe a scan that can be run.
//Individual distances are checked by the scan itself.
func (o *Options) Validate() error {
	if o.Sigma <= 0 {
		return fmt.Errorf("config: sigma must be positive, got %g", o.Sigma)
	}
	if len(o.Distances) == 0 {
		return fmt.Errorf("config: no distances to scan")
	}
	if o.Places < 0 {
		return fmt.Errorf("config: places can't be negative, got %d", o.Places)
	}
	return nil
}

//Pair returns the Lennard-Jones parameters described by the options.
func (o *Options) Pair() *lj.Pair {
	return lj.NewPairEV(o.EpsilonEV, o.Sigma)
}

//Marshal returns the options as a TOML document.
func (o *Options) Marshal() ([]byte, error) {
	return toml.Marshal(o)
}
