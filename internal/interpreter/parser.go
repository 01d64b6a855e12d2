package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Reason says which part of a line was wrong.
type Reason string

const (
	ReasonEmpty         Reason = "empty"
	ReasonKeyword       Reason = "keyword"
	ReasonSyntax        Reason = "syntax"
	ReasonArgumentCount Reason = "argument count"
	ReasonCoordinate    Reason = "coordinate"
	ReasonDirection     Reason = "direction"
)

// ParseError is returned by Parse. Err is ErrUnknownInstruction or
// ErrInvalidArgument; Cause holds the underlying failure, if any.
type ParseError struct {
	Input  string
	Reason Reason
	Err    error
	Cause  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s (%s) in %q", e.Err, e.Reason, e.Input)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type line struct {
	Keyword string      `parser:"@Ident"`
	Args    []*argument `parser:"( @@ ( ','? @@ )* )?"`
}

type argument struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Int   *string `parser:"  @Int"`
	Ident *string `parser:"| @Ident"`
}

func (a *argument) String() string {
	if a.Int != nil {
		return *a.Int
	}
	if a.Ident != nil {
		return *a.Ident
	}
	return ""
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// placeArity is the number of PLACE arguments: x, y and facing.
const placeArity = 3

// Parse turns one line of input into an Instruction.
//
// PLACE arguments may be separated by commas, whitespace or both, so
// "PLACE 1,2,EAST" and "PLACE 1 2 EAST" are the same instruction, while
// "PLACE 1,2EAST" is a syntax error. MOVE,
// LEFT, RIGHT and REPORT take no arguments; trailing tokens are rejected.
func Parse(input string) (Instruction, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, &ParseError{Input: input, Reason: ReasonEmpty, Err: ErrUnknownInstruction}
	}
	kind, ok := kinds[fields[0]]
	if !ok {
		return nil, &ParseError{Input: input, Reason: ReasonKeyword, Err: ErrUnknownInstruction}
	}

	ln, err := parser.ParseString("", input)
	if err != nil {
		return nil, &ParseError{Input: input, Reason: ReasonSyntax, Err: ErrInvalidArgument, Cause: err}
	}
	if err := checkSeparated(ln.Args); err != nil {
		return nil, &ParseError{Input: input, Reason: ReasonSyntax, Err: ErrInvalidArgument, Cause: err}
	}

	if kind != KindPlace {
		if len(ln.Args) != 0 {
			return nil, &ParseError{
				Input:  input,
				Reason: ReasonArgumentCount,
				Err:    ErrInvalidArgument,
				Cause:  errors.Errorf("%s takes no arguments, got %d", kind, len(ln.Args)),
			}
		}
		switch kind {
		case KindMove:
			return Move{}, nil
		case KindLeft:
			return Left{}, nil
		case KindRight:
			return Right{}, nil
		default:
			return Report{}, nil
		}
	}
	return parsePlace(input, ln.Args)
}

// checkSeparated rejects arguments that touch, such as "1-2" or "2EAST".
// Only commas and elided whitespace can sit between two arguments, so a
// non-empty gap is a valid separator.
func checkSeparated(args []*argument) error {
	for i := 1; i < len(args); i++ {
		if args[i].Pos.Offset <= args[i-1].EndPos.Offset {
			return errors.Errorf("no separator between %q and %q", args[i-1], args[i])
		}
	}
	return nil
}

func parsePlace(input string, args []*argument) (Instruction, error) {
	if len(args) != placeArity {
		return nil, &ParseError{
			Input:  input,
			Reason: ReasonArgumentCount,
			Err:    ErrInvalidArgument,
			Cause:  errors.Errorf("PLACE takes %d arguments, got %d", placeArity, len(args)),
		}
	}
	x, err := parseCoordinate(args[0])
	if err != nil {
		return nil, &ParseError{Input: input, Reason: ReasonCoordinate, Err: ErrInvalidArgument, Cause: err}
	}
	y, err := parseCoordinate(args[1])
	if err != nil {
		return nil, &ParseError{Input: input, Reason: ReasonCoordinate, Err: ErrInvalidArgument, Cause: err}
	}
	if args[2].Ident == nil {
		return nil, &ParseError{
			Input:  input,
			Reason: ReasonDirection,
			Err:    ErrInvalidArgument,
			Cause:  errors.Errorf("expected a direction, got %q", args[2]),
		}
	}
	facing, err := ParseDirection(*args[2].Ident)
	if err != nil {
		return nil, &ParseError{Input: input, Reason: ReasonDirection, Err: ErrInvalidArgument, Cause: err}
	}
	return Place{X: x, Y: y, Facing: facing}, nil
}

// Coordinates are limited to the int8 range; the table check happens when
// the robot is placed.
func parseCoordinate(a *argument) (int, error) {
	if a.Int == nil {
		return 0, errors.Errorf("expected an integer, got %q", a)
	}
	n, err := strconv.ParseInt(*a.Int, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "coordinate %s", *a.Int)
	}
	return int(n), nil
}
