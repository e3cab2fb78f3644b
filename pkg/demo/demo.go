package demo

import (
	"fmt"
	"io"

	"github.com/selectdb/go_patterns/pkg/utils"
	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/selectdb/go_patterns/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

// Func writes one pattern demo transcript to w.
type Func func(w io.Writer) error

var demos = btree.NewMap[string, Func](8)

func init() {
	demos.Set("builder", Builder)
	demos.Set("decorator", Decorator)
	demos.Set("factory", Factory)
	demos.Set("observer", Observer)
	demos.Set("singleton", Singleton)
	demos.Set("strategy", Strategy)
}

// Names lists the registered demos in sorted order.
func Names() []string {
	names := make([]string, 0, demos.Len())
	demos.Scan(func(name string, _ Func) bool {
		names = append(names, name)
		return true
	})
	return names
}

func Run(name string, w io.Writer) error {
	f, ok := demos.Get(name)
	if !ok {
		return xerror.Errorf(xerror.InvalidArgument, "unknown demo %q, want one of %v", name, Names())
	}

	return utils.WithDemo(name, func() error {
		log.Debugf("run demo %s", name)
		xmetrics.DemoRun(name)
		if err := runDemo(f, w); err != nil {
			if root, ok := xerror.Root(err); ok {
				xmetrics.AddError(root)
			}
			return xerror.Wrapf(err, xerror.Normal, "demo %s", name)
		}
		return nil
	})
}

// runDemo turns a panic inside f, such as one raised by a user observer, into
// an error.
func runDemo(f Func, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("demo panicked: %v", r)
			err = xerror.Panicf(xerror.Normal, "panic: %v", r)
		}
	}()

	return f(w)
}

// RunAll runs every demo in name order, separated by a header line.
func RunAll(w io.Writer) error {
	for i, name := range Names() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return xerror.Wrap(err, xerror.IO, "write separator")
			}
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n", name); err != nil {
			return xerror.Wrapf(err, xerror.IO, "write header %s", name)
		}
		if err := Run(name, w); err != nil {
			return err
		}
	}
	return nil
}

// printer keeps the first write error and drops every later write.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, args...); err != nil {
		p.err = xerror.Wrap(err, xerror.IO, "write demo output")
	}
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = xerror.Wrap(err, xerror.IO, "write demo output")
	}
}

// do runs f unless a write already failed, and keeps its error.
func (p *printer) do(f func() error) {
	if p.err != nil {
		return
	}
	p.err = f()
}
