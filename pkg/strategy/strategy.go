package strategy

import (
	"github.com/selectdb/go_patterns/pkg/xerror"
	log "github.com/sirupsen/logrus"
)

// Strategy is one arithmetic operation over two operands.
type Strategy interface {
	Name() string
	DoOperation(num1, num2 int) int
}

type OperationAdd struct{}

func (OperationAdd) Name() string                   { return "add" }
func (OperationAdd) DoOperation(num1, num2 int) int { return num1 + num2 }

type OperationSub struct{}

func (OperationSub) Name() string                   { return "sub" }
func (OperationSub) DoOperation(num1, num2 int) int { return num1 - num2 }

type OperationMul struct{}

func (OperationMul) Name() string                   { return "mul" }
func (OperationMul) DoOperation(num1, num2 int) int { return num1 * num2 }

// Context runs whichever strategy it currently holds.
type Context struct {
	strategy Strategy
}

func NewContext(strategy Strategy) (*Context, error) {
	if strategy == nil {
		return nil, xerror.New(xerror.InvalidArgument, "strategy is nil")
	}
	return &Context{strategy: strategy}, nil
}

func (c *Context) Strategy() Strategy {
	return c.strategy
}

func (c *Context) SetStrategy(strategy Strategy) error {
	if strategy == nil {
		return xerror.New(xerror.InvalidArgument, "strategy is nil")
	}

	log.Debugf("Changing the strategy of our context, %s -> %s", c.strategy.Name(), strategy.Name())
	c.strategy = strategy
	return nil
}

func (c *Context) ExecStrategy(num1, num2 int) int {
	return c.strategy.DoOperation(num1, num2)
}
