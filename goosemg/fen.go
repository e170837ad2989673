package goosemg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every error ParseFEN returns.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

const pieceChars = " PNBRQK  pnbrqk"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	if ch == ' ' {
		return NoPiece
	}
	if i := strings.IndexRune(pieceChars, ch); i > 0 {
		return Piece(i)
	}
	return NoPiece
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	if p == NoPiece || int(p) >= len(pieceChars) || pieceChars[p] == ' ' {
		return '?'
	}
	return pieceChars[p]
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The clock fields are optional.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("not enough fields in %q", fen)
	}

	board := NewBoard()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank %d", rank+1)
			}
			board.addPiece(NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d does not have 8 columns", rank+1)
		}
	}

	if err := board.checkPieceCounts(); err != nil {
		return nil, fenError("%v", err)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
	case "b":
		board.sideToMove = Black
		board.zobristKey ^= zobristSide
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	var cr CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				cr |= CastlingWhiteK
			case 'Q':
				cr |= CastlingWhiteQ
			case 'k':
				cr |= CastlingBlackK
			case 'q':
				cr |= CastlingBlackQ
			default:
				return nil, fenError("invalid castling rights character %q", ch)
			}
		}
	}
	board.SetCastlingRights(cr)

	// 4. En passant target square
	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant: %w", ErrInvalidFEN, err)
		}
		board.enPassantSquare = ep
		board.zobristKey ^= zobristEnPassant[ep.File()]
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fenError("halfmove clock %q is not a number", fields[4])
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fenError("fullmove number %q is not a number", fields[5])
		}
		board.fullmoveNumber = fullmove
	}

	board.refresh()
	return board, nil
}

// MustParseFEN is ParseFEN for positions known to be valid; it panics on error.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if b.castlingRights&(1<<i) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
