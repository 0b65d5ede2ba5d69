// Command ascii-image converts a raster image into ASCII art.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/eddieibarra4242/ascii-image/internal/config"
	"github.com/eddieibarra4242/ascii-image/pkg/imgio"
	"github.com/eddieibarra4242/ascii-image/pkg/luma"
	"github.com/eddieibarra4242/ascii-image/pkg/raster"
	"github.com/eddieibarra4242/ascii-image/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		fast      bool
		perceived bool
		invert    bool
		showHelp  bool
		spacesArg string
		colsArg   string
		rowsArg   string
		ratioArg  string
		outPath   string
	)

	flags := pflag.NewFlagSet("ascii-image", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&fast, "fast-perceived", "a", false, "use the fast perceived luminance model")
	flags.BoolVarP(&perceived, "perceived", "p", false, "use the exact perceived luminance model")
	flags.BoolVarP(&invert, "invert", "i", false, "invert the brightness mapping")
	flags.StringVarP(&spacesArg, "spaces", "n", "", "number of blank slots appended to the density ramp (default 9)")
	flags.StringVarP(&outPath, "output", "o", "", "output path (default standard output)")
	flags.StringVarP(&colsArg, "columns", "W", "", "target output columns")
	flags.StringVarP(&rowsArg, "rows", "H", "", "target output rows")
	flags.StringVarP(&ratioArg, "ratio", "r", "", "font aspect ratio as W:H or W/H (default 1:2)")
	flags.BoolVarP(&showHelp, "help", "h", false, "show this message")

	if err := flags.Parse(args); err != nil {
		// Unknown flags are usage errors, not failures.
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "ascii-image: %v\n\n", err)
		}
		printUsage(stdout, flags)
		return 0
	}

	if showHelp || flags.NArg() == 0 {
		printUsage(stdout, flags)
		return 0
	}

	cfg := config.Default()
	cfg.InputPath = flags.Arg(0)
	cfg.OutputPath = outPath
	cfg.Model = luma.Select(fast, perceived)
	cfg.Invert = invert
	cfg.TrailingSpaces = config.ParseCount(spacesArg, cfg.TrailingSpaces)
	cfg.Columns = config.ParseCount(colsArg, 0)
	cfg.Rows = config.ParseCount(rowsArg, 0)
	if ratio, ok := config.ParseRatio(ratioArg); ok {
		cfg.FontRatio = ratio
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "ascii-image: %v\n", err)
		return 1
	}

	img, err := imgio.Load(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(stderr, "ascii-image: %v\n", err)
		return 1
	}
	buf := raster.FromImage(img)

	out := stdout
	var file *os.File
	if cfg.OutputPath != "" {
		file, err = os.Create(cfg.OutputPath)
		if err != nil {
			fmt.Fprintf(stderr, "ascii-image: could not open %s: %v\n", cfg.OutputPath, err)
			return 1
		}
		out = file
	}

	writer := bufio.NewWriter(out)
	if err := render.RenderTo(writer, buf, cfg.Options()); err != nil {
		fmt.Fprintf(stderr, "ascii-image: write failed: %v\n", err)
		if file != nil {
			file.Close()
		}
		return 1
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(stderr, "ascii-image: write failed: %v\n", err)
		if file != nil {
			file.Close()
		}
		return 1
	}
	if file != nil {
		if err := file.Close(); err != nil {
			fmt.Fprintf(stderr, "ascii-image: close failed: %v\n", err)
			return 1
		}
	}

	return 0
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Image to ASCII")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ascii-image [options] filename")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, flags.FlagUsages())
}
