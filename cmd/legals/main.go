// Command legals prints the move records generated for a position.
//
// Each record is one line, "<from>: <destinations>", with "promo" appended
// for promotion records. -expand lists the concrete UCI moves and -verify
// reports where they differ from notnil/chess. Differences are expected when
// pins or attacks by pieces other than the king are involved, since the
// generator leaves those to its caller.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	mg "chess-movegen/goosemg"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))

	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("log level")
	}
	log.SetLevel(level)

	if err := run(cfg, os.Stdout); err != nil {
		log.WithError(err).Fatal("legals")
	}
}

func run(cfg Config, w io.Writer) error {
	board, err := mg.ParseFEN(cfg.FEN)
	if err != nil {
		return err
	}
	ctx := log.WithFields(log.Fields{
		"fen":      cfg.FEN,
		"side":     board.SideToMove(),
		"in_check": board.InCheck(),
	})
	ctx.Debug("position loaded")

	var ml mg.MoveList
	mg.EnumerateMoves(board, &ml)
	for _, r := range ml.Records() {
		writeRecord(w, r)
	}
	ctx.WithFields(log.Fields{"records": ml.Len(), "moves": ml.Count()}).Info("generated")

	moves := ml.Expand(board, nil)
	if cfg.Expand {
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintln(w, strings.Join(names, " "))
	}

	if cfg.Verify {
		d, err := verify(cfg.FEN, moves)
		if err != nil {
			return err
		}
		if d.empty() {
			ctx.Info("matches notnil/chess")
			return nil
		}
		ctx.WithFields(log.Fields{
			"missing": strings.Join(d.Missing, " "),
			"extra":   strings.Join(d.Extra, " "),
		}).Warn("differs from notnil/chess")
	}
	return nil
}

func writeRecord(w io.Writer, r mg.SquareAndBitBoard) {
	dests := make([]string, 0, r.BitBoard.Count())
	for sq := range r.BitBoard.Squares() {
		dests = append(dests, sq.String())
	}
	line := r.Square.String() + ": " + strings.Join(dests, " ")
	if r.Promotion {
		line += " promo"
	}
	fmt.Fprintln(w, line)
}
