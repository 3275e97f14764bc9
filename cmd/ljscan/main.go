//Command ljscan evaluates the Lennard-Jones potential of a pair of argon atoms at 6 separations
//and prints the lowest energy found, e.g. "-1.65e-21 J".
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	lj "github.com/rmera/ljscan"
	"github.com/rmera/ljscan/config"
	"github.com/rmera/ljscan/ljjson"
	"github.com/rmera/ljscan/ljplot"
	"github.com/rmera/ljscan/table"
	"github.com/spf13/cobra"
)

type opts struct {
	configPath string
	strict     bool
	conc       bool
	tablePath  string
	jsonOut    bool
	plotPath   string
	verbose    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ljscan: ")
	if err := newRoot(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRoot(out io.Writer) *cobra.Command {
	o := new(opts)
	root := &cobra.Command{
		Use:           "ljscan",
		Short:         "Lennard-Jones energy scan of an argon pair",
		Long:          "ljscan evaluates the Lennard-Jones potential of a pair of atoms (argon by default)\nat a set of separations and prints the lowest energy found.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, out)
		},
	}
	root.Flags().StringVarP(&o.configPath, "config", "c", "", "TOML file describing the scan (default: argon)")
	root.Flags().BoolVar(&o.strict, "strict", false, "report the lowest energy in the scan even if it is positive")
	root.Flags().BoolVar(&o.conc, "conc", false, "evaluate the distances concurrently")
	root.Flags().StringVar(&o.tablePath, "table", "", "write the scan to a compressed table (.zst, .gz, .flate or .txt)")
	root.Flags().BoolVar(&o.jsonOut, "json", false, "print a JSON report instead of the energy line")
	root.Flags().StringVar(&o.plotPath, "plot", "", "plot the potential and the scan to this file (.png, .svg, .pdf)")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "print the energy at each distance to stderr")
	return root
}

func run(o *opts, out io.Writer) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return err
		}
	}
	strict := cfg.StrictMinimum || o.strict
	pair := cfg.Pair()
	var S *lj.Scan
	var err error
	if cfg.Concurrent || o.conc {
		S, err = pair.ScanConc(cfg.Distances)
	} else {
		S, err = pair.Scan(cfg.Distances)
	}
	if err != nil {
		return err
	}
	if o.verbose {
		log.Print(S)
	}
	var m lj.Min
	if strict {
		m, err = S.StrictMinimum()
		if err != nil {
			return err
		}
	} else {
		m = S.Minimum()
	}
	if o.tablePath != "" {
		if err := table.WriteScan(o.tablePath, S, map[string]string{"min_index": fmt.Sprint(m.Index)}); err != nil {
			return err
		}
	}
	if o.plotPath != "" {
		if err := ljplot.PotentialPlot(S, m, cfg.Exponent, "Lennard-Jones scan", o.plotPath); err != nil {
			return err
		}
	}
	if o.jsonOut {
		if jerr := ljjson.NewReport(S, m, strict, cfg.Exponent, cfg.Places).Send(out); jerr != nil {
			return jerr
		}
		return nil
	}
	_, err = fmt.Fprintln(out, lj.FormatScaled(m.Energy, cfg.Exponent, cfg.Places))
	return err
}
