// Command bishop prints the squares a diagonal mover reaches from an origin square.
//
// Usage:
//
//	bishop [flags] [square]
//
// By default the origin is square 27 (d4) and the result is printed as an
// ascending list such as [6 9 13 18 20 27 34 36 41 45 48 54].
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/0x5844/bishop"
	"github.com/0x5844/bishop/image"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bishop: ")
	flag.Parse()

	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(stdout io.Writer, args []string) error {
	p, err := newPrinter(stdout, *formatFlag, *drawFlag, *geometricFlag)
	if err != nil {
		return err
	}

	if *literalFlag {
		log.Print("literal mode: printing the unfilled accumulator; the walk is not performed")
		return p.printEmpty()
	}

	if *allFlag {
		return p.print(bishop.DefaultTable().Reaches()...)
	}

	src := *squareFlag
	if len(args) > 0 {
		src = args[0]
	}
	origin, err := bishop.ParseSquare(src)
	if err != nil {
		return err
	}
	r, err := bishop.NewReach(origin)
	if err != nil {
		return err
	}

	if *svgFlag != "" {
		if err := writeSVG(*svgFlag, r); err != nil {
			return err
		}
	}
	return p.print(r)
}

func writeSVG(path string, r bishop.Reach) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close svg: %w", cerr)
		}
	}()
	return image.SVG(f, r, image.Indices(true))
}
