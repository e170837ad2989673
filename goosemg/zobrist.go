package goosemg

import "math/rand"

// Zobrist keys for pieces, castling, en passant and side to move. The hash
// lets callers confirm a snapshot was left untouched by generation.
var (
	zobristPiece     [15][64]uint64 // by piece code and square
	zobristCastle    [16]uint64     // by castling rights state
	zobristEnPassant [8]uint64      // by en passant file
	zobristSide      uint64         // black to move
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the Zobrist hash for the current board state from
// scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}
