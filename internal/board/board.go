// Package board wraps a position with the two counters FEN carries
// alongside it (halfmove clock, fullmove number) and implements the
// FEN codec described in spec.md §4.4. Unlike the position package's
// teacher heritage, malformed input is reported as an error rather
// than a panic: FEN strings usually arrive from outside the process
// (UCI "position fen ..." commands, test fixtures) and are not an
// engine invariant.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvid-chess/corvid/internal/corvidlog"
	"github.com/corvid-chess/corvid/internal/position"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

var log = corvidlog.Get("board")

// ErrInvalidFEN is wrapped by every error ParseFEN returns, so callers
// can test with errors.Is regardless of which field failed.
var ErrInvalidFEN = errors.New("board: invalid FEN")

// Board is a Position plus the two move counters FEN records. The
// counters play no part in move generation or search, only in FEN
// round-tripping and the fifty-move draw rule (internal/history).
type Board struct {
	position.Position
	HalfmoveClock   int
	FullmoveCounter int
}

var pieceLetters = map[byte]square.Piece{
	'p': square.Pawn, 'n': square.Knight, 'b': square.Bishop,
	'r': square.Rook, 'q': square.Queen, 'k': square.King,
}

// ParseFEN parses a Forsyth-Edwards Notation string. Per spec.md §4.4,
// a FEN with only 4 or 5 fields is accepted and padded: a missing
// fullmove counter defaults to 1, a missing halfmove clock to 0.
// Anything else malformed is reported as ErrInvalidFEN.
func ParseFEN(keys *zobrist.Keys, fen string) (b Board, err error) {
	defer func() {
		if err != nil {
			log.Warningf("ParseFEN(%q): %v", fen, err)
		}
	}()

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("%w: need at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if len(fields) > 6 {
		return Board{}, fmt.Errorf("%w: at most 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	for len(fields) < 6 {
		switch len(fields) {
		case 4:
			fields = append(fields, "0")
		case 5:
			fields = append(fields, "1")
		}
	}

	pos := position.New()

	if err := parsePlacement(&pos, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		pos.ActiveColor = square.White
	case "b":
		pos.ActiveColor = square.Black
	default:
		return Board{}, fmt.Errorf("%w: active color %q", ErrInvalidFEN, fields[1])
	}

	if err := parseCastling(&pos, fields[2]); err != nil {
		return Board{}, err
	}

	if fields[3] == "-" {
		pos.EnPassant = square.NoSquare
	} else {
		sq, ok := square.ParseSquare(fields[3])
		if !ok {
			return Board{}, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		pos.EnPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Board{}, fmt.Errorf("%w: fullmove counter %q", ErrInvalidFEN, fields[5])
	}

	pos.Hash = pos.ComputeHash(keys)

	return Board{Position: pos, HalfmoveClock: halfmove, FullmoveCounter: fullmove}, nil
}

func parsePlacement(pos *position.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: piece placement has %d ranks, want 8", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := square.Rank(7 - i)
		file := square.File(0)
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				file += square.File(c - '0')
			default:
				lower := c | 0x20
				piece, ok := pieceLetters[lower]
				if !ok {
					return fmt.Errorf("%w: piece placement byte %q", ErrInvalidFEN, string(c))
				}
				if file > 7 {
					return fmt.Errorf("%w: rank %d overflows 8 files", ErrInvalidFEN, 8-i)
				}
				color := square.Black
				if c == (c &^ 0x20) {
					color = square.White
				}
				sq := square.FromFileRank(file, rank)
				pos.Pieces[color][piece] = pos.Pieces[color][piece].Set(sq)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d files, want 8", ErrInvalidFEN, 8-i, file)
		}
	}
	return nil
}

// castlingFields lists the 16 literal spellings FEN's castling field
// accepts, each mapped to the white/black rights it grants. Per
// spec.md §4.4 unlisted spellings are rejected even when they denote
// the same rights in a different letter order ("qk" or a repeated
// "KK" are not valid FEN).
var castlingFields = map[string][2]square.CastlingRights{
	"-":    {square.NoRights, square.NoRights},
	"q":    {square.NoRights, square.QueenSide},
	"k":    {square.NoRights, square.KingSide},
	"kq":   {square.NoRights, square.Both},
	"Q":    {square.QueenSide, square.NoRights},
	"Qq":   {square.QueenSide, square.QueenSide},
	"Qk":   {square.QueenSide, square.KingSide},
	"Qkq":  {square.QueenSide, square.Both},
	"K":    {square.KingSide, square.NoRights},
	"Kq":   {square.KingSide, square.QueenSide},
	"Kk":   {square.KingSide, square.KingSide},
	"Kkq":  {square.KingSide, square.Both},
	"KQ":   {square.Both, square.NoRights},
	"KQq":  {square.Both, square.QueenSide},
	"KQk":  {square.Both, square.KingSide},
	"KQkq": {square.Both, square.Both},
}

func parseCastling(pos *position.Position, field string) error {
	rights, ok := castlingFields[field]
	if !ok {
		return fmt.Errorf("%w: castling rights field %q", ErrInvalidFEN, field)
	}
	pos.CastlingRights[square.White] = rights[0]
	pos.CastlingRights[square.Black] = rights[1]
	return nil
}

// String serializes the board back into a FEN string.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := square.FromFileRank(square.File(file), square.Rank(rank))
			piece, color, ok := b.GetPiece(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(piece, color))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ActiveColor == square.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	castling := castlingField(b.CastlingRights[square.White], b.CastlingRights[square.Black])
	sb.WriteString(castling)
	sb.WriteByte(' ')

	if b.EnPassant == square.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassant.String())
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveCounter))

	return sb.String()
}

func pieceLetter(p square.Piece, c square.Color) byte {
	letters := "pnbrqk"
	ch := letters[p]
	if c == square.White {
		ch &^= 0x20
	}
	return ch
}

func castlingField(white, black square.CastlingRights) string {
	var sb strings.Builder
	if white.Has(square.KingSide) {
		sb.WriteByte('K')
	}
	if white.Has(square.QueenSide) {
		sb.WriteByte('Q')
	}
	if black.Has(square.KingSide) {
		sb.WriteByte('k')
	}
	if black.Has(square.QueenSide) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
