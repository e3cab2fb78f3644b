package factory

import (
	"strings"

	"github.com/selectdb/go_patterns/pkg/xerror"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

const degree = 8

type ShapeCreator func() Shape

// ShapeFactory maps case-insensitive kinds to shape constructors.
type ShapeFactory struct {
	creators *btree.Map[string, ShapeCreator]
}

// NewShapeFactory returns a factory knowing circle, rectangle and square.
func NewShapeFactory() *ShapeFactory {
	f := &ShapeFactory{
		creators: btree.NewMap[string, ShapeCreator](degree),
	}
	f.creators.Set("circle", func() Shape { return Circle{} })
	f.creators.Set("rectangle", func() Shape { return Rectangle{} })
	f.creators.Set("square", func() Shape { return Square{} })
	return f
}

// Register adds or replaces the creator for kind.
func (f *ShapeFactory) Register(kind string, creator ShapeCreator) error {
	if kind == "" {
		return xerror.New(xerror.InvalidArgument, "shape kind is empty")
	}
	if creator == nil {
		return xerror.Errorf(xerror.InvalidArgument, "shape creator for %s is nil", kind)
	}

	if _, replaced := f.creators.Set(strings.ToLower(kind), creator); replaced {
		log.Warnf("shape creator for %s replaced", kind)
	}
	return nil
}

func (f *ShapeFactory) GetShape(kind string) (Shape, error) {
	creator, ok := f.creators.Get(strings.ToLower(kind))
	if !ok {
		return nil, xerror.Errorf(xerror.InvalidArgument, "unknown shape kind %q", kind)
	}
	return creator(), nil
}

// Kinds lists the registered kinds in sorted order.
func (f *ShapeFactory) Kinds() []string {
	kinds := make([]string, 0, f.creators.Len())
	f.creators.Scan(func(kind string, _ ShapeCreator) bool {
		kinds = append(kinds, kind)
		return true
	})
	return kinds
}
