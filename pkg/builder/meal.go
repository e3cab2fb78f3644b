package builder

import (
	"fmt"
	"io"

	"github.com/selectdb/go_patterns/pkg/xerror"
	log "github.com/sirupsen/logrus"
)

type Meal struct {
	items []Item
}

func (m *Meal) AddItem(item Item) error {
	if item == nil {
		return xerror.New(xerror.InvalidArgument, "meal item is nil")
	}
	m.items = append(m.items, item)
	return nil
}

func (m *Meal) Items() []Item {
	return m.items
}

func (m *Meal) Cost() float64 {
	var cost float64
	for _, item := range m.items {
		cost += item.Price()
	}
	return cost
}

func (m *Meal) ShowItems(w io.Writer) error {
	for _, item := range m.items {
		if _, err := fmt.Fprintf(w, "Item: %s\nPacking: %s\nPrice: %s\n--------\n",
			item.Name(), item.Packing().Pack(), FormatPrice(item.Price())); err != nil {
			return xerror.Wrapf(err, xerror.IO, "show item %s", item.Name())
		}
	}
	return nil
}

// FormatPrice keeps one decimal, so 2 prints as 2.0.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.1f", price)
}

type MealBuilder struct{}

func (b MealBuilder) PrepareVegMeal() *Meal {
	return b.prepare(VegBurger{}, Water{})
}

func (b MealBuilder) PrepareNonVegMeal() *Meal {
	return b.prepare(ChickenBurger{}, Coke{})
}

func (MealBuilder) prepare(items ...Item) *Meal {
	meal := &Meal{items: items}
	log.Debugf("prepared meal with %d items, cost %s", len(items), FormatPrice(meal.Cost()))
	return meal
}
