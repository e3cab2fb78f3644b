package builder

// Packing is how an item is handed over.
type Packing interface {
	Pack() string
}

type Wrapper struct{}

func (Wrapper) Pack() string { return "Wrapper" }

type Bottle struct{}

func (Bottle) Pack() string { return "Bottle" }

type Item interface {
	Name() string
	Packing() Packing
	Price() float64
}

// Burger is embedded by every burger, they all come wrapped.
type Burger struct{}

func (Burger) Packing() Packing { return Wrapper{} }

type VegBurger struct{ Burger }

func (VegBurger) Name() string   { return "Veg Burger" }
func (VegBurger) Price() float64 { return 10.5 }

type ChickenBurger struct{ Burger }

func (ChickenBurger) Name() string   { return "Chicken Burger" }
func (ChickenBurger) Price() float64 { return 20.5 }

// Drink is embedded by every drink, they all come bottled.
type Drink struct{}

func (Drink) Packing() Packing { return Bottle{} }

type Coke struct{ Drink }

func (Coke) Name() string   { return "Coke" }
func (Coke) Price() float64 { return 5.0 }

type Pepsi struct{ Drink }

func (Pepsi) Name() string   { return "Pepsi" }
func (Pepsi) Price() float64 { return 3.0 }

type Water struct{ Drink }

func (Water) Name() string   { return "Water" }
func (Water) Price() float64 { return 2.0 }
