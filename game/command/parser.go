package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrArgumentCount   = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
)

type line struct {
	Keyword string `parser:"@Ident"`
	Args    []*arg `parser:"( @@ ( ',' @@ )* )?"`
}

type arg struct {
	Number *number `parser:"@@"`
	Word   *string `parser:"| @Ident"`
}

type number struct {
	Neg    bool   `parser:"@'-'?"`
	Digits string `parser:"@Int"`
}

// value reads the digits as base 10; leading zeros do not change the base
func (n *number) value() (int, error) {
	v, err := strconv.Atoi(n.Digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidArgument, n.Digits)
	}
	if n.Neg {
		return -v, nil
	}
	return v, nil
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
	{Name: "Punct", Pattern: `[-,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[line](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// Parse turns a raw input line into a Command.
// Keywords and orientation names are case-insensitive.
func Parse(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}, ErrEmptyInput
	}

	ast, err := parser.ParseString("", input)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	key, ok := LookupKey(ast.Keyword)
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, ast.Keyword)
	}

	switch arities[key] {
	case noArgs:
		if len(ast.Args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrArgumentCount, key)
		}
		return Command{Key: key}, nil

	case optionalID:
		if len(ast.Args) > 1 {
			return Command{}, fmt.Errorf("%w: %s takes at most one robot id", ErrArgumentCount, key)
		}
		if len(ast.Args) == 0 {
			return Command{Key: key}, nil
		}
		if ast.Args[0].Number == nil {
			return Command{}, fmt.Errorf("%w: robot id must be an integer, got %q", ErrInvalidArgument, *ast.Args[0].Word)
		}
		id, err := ast.Args[0].Number.value()
		if err != nil {
			return Command{}, err
		}
		return WithID(key, id), nil

	default:
		return parsePlace(ast.Args)
	}
}

func parsePlace(args []*arg) (Command, error) {
	if len(args) != 3 {
		return Command{}, fmt.Errorf("%w: PLACE expects x,y,F", ErrArgumentCount)
	}
	if args[0].Number == nil || args[1].Number == nil {
		return Command{}, fmt.Errorf("%w: PLACE coordinates must be integers", ErrInvalidArgument)
	}
	if args[2].Word == nil {
		return Command{}, fmt.Errorf("%w: PLACE orientation must be a compass name", ErrInvalidArgument)
	}
	x, err := args[0].Number.value()
	if err != nil {
		return Command{}, err
	}
	y, err := args[1].Number.value()
	if err != nil {
		return Command{}, err
	}
	facing, err := engine.ParseOrientation(*args[2].Word)
	if err != nil {
		return Command{}, err
	}
	return NewPlace(engine.Position{X: x, Y: y, Facing: facing}), nil
}
