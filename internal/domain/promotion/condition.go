package promotion

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"salesdesk/internal/core/types"
)

var (
	envOnce sync.Once
	celEnv  *cel.Env
	envErr  error
)

func conditionEnv() (*cel.Env, error) {
	envOnce.Do(func() {
		celEnv, envErr = cel.NewEnv(
			cel.Variable("quantity", cel.IntType),
			cel.Variable("unit_price", cel.DoubleType),
		)
	})
	return celEnv, envErr
}

// condition is a compiled eligibility expression.
type condition struct {
	prg cel.Program
}

func compileCondition(expr string) (*condition, error) {
	env, err := conditionEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("condition must be boolean, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("cel program: %w", err)
	}
	return &condition{prg: prg}, nil
}

func (c *condition) eval(quantity int, unitPrice types.Money) (bool, error) {
	price, _ := unitPrice.Float64()
	out, _, err := c.prg.Eval(map[string]any{
		"quantity":   int64(quantity),
		"unit_price": price,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate condition: %w", err)
	}
	ok, isBool := out.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("condition returned %T", out.Value())
	}
	return ok, nil
}
