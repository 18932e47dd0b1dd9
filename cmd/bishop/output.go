package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jackpal/bencode-go"

	"github.com/0x5844/bishop"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatBencode = "bencode"
)

var errUnknownFormat = errors.New("unknown output format")

// report is the encoded form of one origin's reach.
type report struct {
	Origin  int    `json:"origin" bencode:"origin"`
	Square  string `json:"square" bencode:"square"`
	Reach   []int  `json:"reach" bencode:"reach"`
	Missing []int  `json:"missing" bencode:"missing"`
	Extra   []int  `json:"extra" bencode:"extra"`
}

func newReport(r bishop.Reach) (report, error) {
	missing, extra, err := bishop.Divergence(r.Origin)
	if err != nil {
		return report{}, err
	}
	return report{
		Origin:  int(r.Origin),
		Square:  r.Origin.String(),
		Reach:   r.Indices(),
		Missing: indices(missing),
		Extra:   indices(extra),
	}, nil
}

func indices(bb bishop.Bitboard) []int {
	return bishop.Reach{Origin: bishop.NoSquare, Squares: bb}.Indices()
}

// printer writes reaches to w in one format.
type printer struct {
	w         io.Writer
	format    string
	draw      bool
	geometric bool
}

func newPrinter(w io.Writer, format string, draw, geometric bool) (*printer, error) {
	switch format {
	case formatText, formatJSON, formatBencode:
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
	}
	return &printer{w: w, format: format, draw: draw, geometric: geometric}, nil
}

// printEmpty writes an empty sequence in the printer's format.
func (p *printer) printEmpty() error {
	switch p.format {
	case formatJSON:
		return json.NewEncoder(p.w).Encode([]int{})
	case formatBencode:
		return bencode.Marshal(p.w, []int{})
	}
	_, err := fmt.Fprintln(p.w, []int{})
	return err
}

// print writes the reports for rs. Structured formats encode a single reach as
// one value and several as a list.
func (p *printer) print(rs ...bishop.Reach) error {
	reports := make([]report, 0, len(rs))
	for _, r := range rs {
		rep, err := newReport(r)
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	case formatBencode:
		if len(reports) == 1 {
			return bencode.Marshal(p.w, reports[0])
		}
		return bencode.Marshal(p.w, reports)
	}

	for i, r := range rs {
		if err := p.printText(r, reports[i], len(rs) > 1); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printText(r bishop.Reach, rep report, labelled bool) error {
	if labelled {
		if _, err := fmt.Fprintf(p.w, "%2d %s ", rep.Origin, rep.Square); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(p.w, rep.Reach); err != nil {
		return err
	}
	if p.geometric {
		if _, err := fmt.Fprintf(p.w, "missing %v extra %v\n", rep.Missing, rep.Extra); err != nil {
			return err
		}
	}
	if p.draw {
		if _, err := io.WriteString(p.w, r.Draw()); err != nil {
			return err
		}
	}
	return nil
}
