package factory

import (
	"fmt"
	"io"

	"github.com/selectdb/go_patterns/pkg/xerror"
)

type Shape interface {
	Draw(w io.Writer) error
}

func draw(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "I'm a %s\n", name); err != nil {
		return xerror.Wrapf(err, xerror.IO, "draw %s", name)
	}
	return nil
}

type Rectangle struct{}

func (Rectangle) Draw(w io.Writer) error { return draw(w, "Rectangle") }

type Square struct{}

func (Square) Draw(w io.Writer) error { return draw(w, "Square") }

type Circle struct{}

func (Circle) Draw(w io.Writer) error { return draw(w, "Circle") }
