// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/doccolor/base/iox"
	"cogentcore.org/doccolor/colors"
	"cogentcore.org/doccolor/config"
	"cogentcore.org/doccolor/grog"
	"cogentcore.org/doccolor/grr"
	"github.com/spf13/cobra"
)

// Result is the outcome of converting one input.
type Result struct {
	Input      string        `json:"input" yaml:"input" toml:"input"`
	Recognized bool          `json:"recognized" yaml:"recognized" toml:"recognized"`
	Color      *colors.Color `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Hex        string        `json:"hex,omitempty" yaml:"hex,omitempty" toml:"hex,omitempty"`
}

// Digit is the value of one character as a hexadecimal digit.
type Digit struct {
	Char  string `json:"char" yaml:"char" toml:"char"`
	Value int    `json:"value" yaml:"value" toml:"value"`
}

// Report is everything written by one run of the tool.
type Report struct {
	Colors []Result `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Digits []Digit  `json:"digits,omitempty" yaml:"digits,omitempty" toml:"digits,omitempty"`
}

// flags are the command line values that override the config file.
type flags struct {
	config    string
	format    string
	precision int
	strict    bool
	v, vv, q  bool
}

// app holds the state of one command invocation.
type app struct {
	out io.Writer
	fl  flags
	cfg *config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:   "colorconv color...",
		Short: "Convert hex and HSL colors into normalized RGBA",
		Long: `colorconv converts #RGB, #RGBA, #RRGGBB, #RRGGBBAA, hsl(H, S%, L%),
and hsla(H, S%, L%, A) colors into RGBA colors with channels in [0, 1].`,
		Example:           `  colorconv '#0000ffcc' 'hsla(120, 100%, 50%, 0.5)'`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args, colors.FromString)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.fl.config, "config", "", "TOML config file")
	pf.StringVarP(&a.fl.format, "format", "f", "", "output format: text, json, yaml, or toml")
	pf.IntVar(&a.fl.precision, "precision", -1, "significant digits of channels in text output (-1 for shortest)")
	pf.BoolVar(&a.fl.strict, "strict", false, "fail if any input is not recognized")
	pf.BoolVarP(&a.fl.v, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&a.fl.vv, "vv", false, "show debug log messages")
	pf.BoolVarP(&a.fl.q, "quiet", "q", false, "only show error log messages")

	root.AddCommand(&cobra.Command{
		Use:   "hex color...",
		Short: "Convert #RGB, #RGBA, #RRGGBB, and #RRGGBBAA colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args, colors.FromHex)
		},
	}, &cobra.Command{
		Use:   "hsl color...",
		Short: "Convert hsl(H, S%, L%) and hsla(H, S%, L%, A) colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args, colors.FromHSL)
		},
	}, &cobra.Command{
		Use:   "rgb red green blue [alpha]",
		Short: "Convert 0-255 red, green, and blue values and a 0-1 alpha",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.rgb(args)
		},
	}, &cobra.Command{
		Use:   "digit chars...",
		Short: "Print the hexadecimal digit value of each character",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.digits(args)
		},
	})
	return root
}

// setup loads the config file, applies the flags set on the
// command line on top of it, and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()
	if a.fl.config != "" {
		cfg, err := config.Open(a.fl.config)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	fs := cmd.Flags()
	if fs.Changed("format") {
		a.cfg.Format = iox.Format(a.fl.format)
	}
	if fs.Changed("precision") {
		a.cfg.Precision = a.fl.precision
	}
	if fs.Changed("strict") {
		a.cfg.Strict = a.fl.strict
	}
	if fs.Changed("verbose") {
		a.cfg.Verbose = a.fl.v
	}
	if fs.Changed("quiet") {
		a.cfg.Quiet = a.fl.q
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	grog.UserLevel = grog.LevelFromFlags(a.fl.vv, a.cfg.Verbose, a.cfg.Quiet)
	slog.SetDefault(slog.New(grog.NewHandler(cmd.ErrOrStderr())))
	slog.Debug("configured", "format", a.cfg.Format, "precision", a.cfg.Precision, "strict", a.cfg.Strict)
	return nil
}

// convert converts each input with the given parser and writes the report.
func (a *app) convert(inputs []string, parse func(string) (colors.Color, bool)) error {
	rep := &Report{}
	missing := 0
	for _, in := range inputs {
		c, ok := parse(in)
		if !ok {
			slog.Info("not recognized", "input", in)
			missing++
			rep.Colors = append(rep.Colors, Result{Input: in})
			continue
		}
		slog.Debug("converted", "input", in, "color", c.String())
		rep.Colors = append(rep.Colors, newResult(in, c))
	}
	if err := a.write(rep); err != nil {
		return err
	}
	if missing > 0 && a.cfg.Strict {
		return grr.Errorf("%d of %d inputs not recognized", missing, len(inputs))
	}
	return nil
}

func (a *app) rgb(args []string) error {
	var ch [3]int
	for i := range ch {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return grr.Wrap(err, "rgb")
		}
		ch[i] = v
	}
	var alpha []float64
	if len(args) == 4 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return grr.Wrap(err, "rgb")
		}
		alpha = append(alpha, v)
	}
	c := colors.From256RGB(ch[0], ch[1], ch[2], alpha...)
	return a.write(&Report{Colors: []Result{newResult(strings.Join(args, " "), c)}})
}

func (a *app) digits(args []string) error {
	rep := &Report{}
	for _, arg := range args {
		for _, r := range arg {
			rep.Digits = append(rep.Digits, Digit{Char: string(r), Value: colors.HexDigit(r)})
		}
	}
	return a.write(rep)
}

func newResult(in string, c colors.Color) Result {
	return Result{Input: in, Recognized: true, Color: &c, Hex: c.Hex()}
}

// write writes the report in the configured format.
func (a *app) write(rep *Report) error {
	if a.cfg.Format != iox.Text {
		return iox.Write(a.out, a.cfg.Format, rep)
	}
	for _, r := range rep.Colors {
		if !r.Recognized {
			fmt.Fprintf(a.out, "%s\tnot recognized\n", r.Input)
			continue
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", r.Input, a.rgba(*r.Color), r.Hex)
	}
	for _, d := range rep.Digits {
		fmt.Fprintf(a.out, "%q\t%d\n", d.Char, d.Value)
	}
	return nil
}

// rgba formats the color as rgba(r, g, b, a) at the configured precision.
func (a *app) rgba(c colors.Color) string {
	ch := []float64{c.Red, c.Green, c.Blue, c.Alpha}
	s := make([]string, len(ch))
	for i, v := range ch {
		s[i] = strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)
	}
	return "rgba(" + strings.Join(s, ", ") + ")"
}
