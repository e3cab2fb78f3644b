package demo

import (
	"io"

	"github.com/selectdb/go_patterns/pkg/builder"
	"github.com/selectdb/go_patterns/pkg/decorator"
	"github.com/selectdb/go_patterns/pkg/factory"
	"github.com/selectdb/go_patterns/pkg/observer"
	"github.com/selectdb/go_patterns/pkg/singleton"
	"github.com/selectdb/go_patterns/pkg/strategy"
)

func Observer(w io.Writer) error {
	p := &printer{w: w}
	subject := observer.NewSubject(observer.Unset)

	observer.NewHexaObserver(subject, w)
	observer.NewOctalObserver(subject, w)
	observer.NewBinaryObserver(subject, w)

	p.println("First state change: 15")
	p.do(func() error { return subject.SetState(15) })

	p.println("------------------------------------")

	p.println("Second state change: 16")
	p.do(func() error { return subject.SetState(16) })
	return p.err
}

func Strategy(w io.Writer) error {
	p := &printer{w: w}
	ctx, err := strategy.NewContext(strategy.OperationAdd{})
	if err != nil {
		return err
	}
	p.printf("10 + 5 = %d\n", ctx.ExecStrategy(10, 5))

	for _, next := range []struct {
		op       string
		strategy strategy.Strategy
	}{
		{"-", strategy.OperationSub{}},
		{"*", strategy.OperationMul{}},
	} {
		p.println("Changing the strategy of our context")
		p.do(func() error { return ctx.SetStrategy(next.strategy) })
		p.printf("10 %s 5 = %d\n", next.op, ctx.ExecStrategy(10, 5))
	}
	return p.err
}

func Builder(w io.Writer) error {
	p := &printer{w: w}
	mealBuilder := builder.MealBuilder{}

	showMeal := func(title string, meal *builder.Meal) {
		p.printf("%s\n\n", title)
		p.do(func() error { return meal.ShowItems(w) })
		p.printf("Total Cost: %s\n", builder.FormatPrice(meal.Cost()))
	}

	showMeal("Veg Meal", mealBuilder.PrepareVegMeal())
	p.printf("\n\n")
	showMeal("Non-Veg Meal", mealBuilder.PrepareNonVegMeal())
	return p.err
}

func Factory(w io.Writer) error {
	shapeFactory := factory.NewShapeFactory()
	for _, kind := range []string{"CIRCLE", "RECTANGLE", "SQUARE"} {
		shape, err := shapeFactory.GetShape(kind)
		if err != nil {
			return err
		}
		if err := shape.Draw(w); err != nil {
			return err
		}
	}
	return nil
}

func Singleton(w io.Writer) error {
	p := &printer{w: w}
	first := singleton.Instance()
	second := singleton.Instance()

	p.printf("Same instance: %t\n", first == second)
	p.printf("Data: %d\n", first.Data)
	return p.err
}

func Decorator(w io.Writer) error {
	p := &printer{w: w}
	redCircle, err := decorator.NewRedShapeDecorator(decorator.Circle{})
	if err != nil {
		return err
	}
	redRectangle, err := decorator.NewRedShapeDecorator(decorator.Rectangle{})
	if err != nil {
		return err
	}

	for _, c := range []struct {
		title string
		shape decorator.Shape
	}{
		{"Circle with normal border", decorator.Circle{}},
		{"Circle of red border", redCircle},
		{"Rectangle of red border", redRectangle},
	} {
		p.println(c.title)
		p.do(func() error { return c.shape.Draw(w) })
		p.printf("\n\n")
	}
	return p.err
}
