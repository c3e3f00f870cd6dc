// Command qrvalidate scores how reliably a QR code embedded in an image
// will scan in the real world.
//
// Usage:
//
//	qrvalidate [options] <image>   Validate a PNG/JPEG image
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/qrvalidate/qrvalidate"
)

func main() {
	fs := flag.NewFlagSet("qrvalidate", flag.ContinueOnError)
	scoreOnly := fs.Bool("s", false, "print only the numeric score")
	decodeOnly := fs.Bool("d", false, "decode only, skip stress testing and scoring")
	fast := fs.Bool("f", false, "run the fast 3-test stress subset instead of all six")
	asJSON := fs.Bool("j", false, "print the full result as JSON")
	debug := fs.Bool("debug", false, "print per-backend decode coverage across stress variants (ignored with -d)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrvalidate [options] <image>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := run(fs.Arg(0), *scoreOnly, *decodeOnly, *fast, *asJSON, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "qrvalidate: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, scoreOnly, decodeOnly, fast, asJSON, debug bool) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if decodeOnly {
		res, err := qrvalidate.DecodeOnly(buf)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(res)
		}
		fmt.Println(res.Content)
		return nil
	}

	validateFn := qrvalidate.Validate
	if fast {
		validateFn = qrvalidate.ValidateFast
	}

	var opts []qrvalidate.Option
	var coverage map[string]int
	if debug {
		opts = append(opts, qrvalidate.WithBackendCoverage(&coverage))
	}
	res, err := validateFn(buf, opts...)
	if err != nil {
		return err
	}

	switch {
	case asJSON:
		if err := printJSON(res); err != nil {
			return err
		}
	case scoreOnly:
		fmt.Println(res.Score)
	default:
		fmt.Printf("decodable: %v\n", res.Decodable)
		fmt.Printf("score: %d\n", res.Score)
		fmt.Printf("content: %s\n", res.Content)
	}
	if debug {
		fmt.Fprintln(os.Stderr, "backend coverage:")
		for _, b := range []string{"zxing", "quirc"} {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", b, coverage[b])
		}
	}
	return nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
