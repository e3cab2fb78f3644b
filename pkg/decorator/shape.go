package decorator

import (
	"fmt"
	"io"

	"github.com/selectdb/go_patterns/pkg/xerror"
)

type Shape interface {
	Draw(w io.Writer) error
}

func writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return xerror.Wrapf(err, xerror.IO, "write %q", line)
	}
	return nil
}

type Rectangle struct{}

func (Rectangle) Draw(w io.Writer) error { return writeLine(w, "Shape: Rectangle") }

type Circle struct{}

func (Circle) Draw(w io.Writer) error { return writeLine(w, "Shape: Circle") }

// ShapeDecorator draws the wrapped shape unchanged. Decorators embed it and
// add their own drawing around it.
type ShapeDecorator struct {
	decorated Shape
}

func NewShapeDecorator(decorated Shape) (*ShapeDecorator, error) {
	if decorated == nil {
		return nil, xerror.New(xerror.InvalidArgument, "decorated shape is nil")
	}
	return &ShapeDecorator{decorated: decorated}, nil
}

func (d *ShapeDecorator) Draw(w io.Writer) error {
	return d.decorated.Draw(w)
}

type RedShapeDecorator struct {
	ShapeDecorator
}

func NewRedShapeDecorator(decorated Shape) (*RedShapeDecorator, error) {
	base, err := NewShapeDecorator(decorated)
	if err != nil {
		return nil, err
	}
	return &RedShapeDecorator{ShapeDecorator: *base}, nil
}

func (d *RedShapeDecorator) Draw(w io.Writer) error {
	if err := d.decorated.Draw(w); err != nil {
		return err
	}
	return d.setRedBorder(w)
}

func (d *RedShapeDecorator) setRedBorder(w io.Writer) error {
	return writeLine(w, "Border Color: Red")
}
