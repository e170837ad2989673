package goosemg

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// Move flags
const (
	FlagNone   = 0
	FlagCastle = 1
	// (Promotion is indicated by a non-zero promotion piece)
)

// promotionKinds is the order promotion records expand in.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured Piece, promotion Piece, flag uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece code that was captured (or NoPiece if none).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

// String returns the UCI form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += string(charFromPiece(PieceOf(Black, promo.Kind())))
	}
	return s
}

// Expand appends the concrete moves described by the records to dst and
// returns it. Each promotion destination becomes four moves (queen, rook,
// bishop, knight); an empty king destination two files away is a castle.
// The king can also reach a piece two files away through the shared capture
// pattern, and that stays a capture.
func (ml *MoveList) Expand(b *Board, dst []Move) []Move {
	color := b.SideToMove()
	for _, r := range ml.Records() {
		moved := b.PieceAt(r.Square)
		for rest := r.BitBoard; rest != 0; {
			to := popLSB(&rest)
			captured := b.PieceAt(to)
			switch {
			case r.Promotion:
				for _, kind := range promotionKinds {
					dst = append(dst, NewMove(r.Square, to, moved, captured, PieceOf(color, kind), FlagNone))
				}
			case moved.Kind() == King && captured == NoPiece && absInt(to.File()-r.Square.File()) == 2:
				dst = append(dst, NewMove(r.Square, to, moved, NoPiece, NoPiece, FlagCastle))
			default:
				dst = append(dst, NewMove(r.Square, to, moved, captured, NoPiece, FlagNone))
			}
		}
	}
	return dst
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
