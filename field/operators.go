package field

import "fmt"

// Sum is the pointwise sum of two equally shaped expressions.
type Sum struct {
	A, B Expression
}

func Add(a, b Expression) *Sum {
	if !a.Shape().Equals(b.Shape()) {
		panic(fmt.Errorf("shape mismatch in Add: %v vs %v", a.Shape(), b.Shape()))
	}
	return &Sum{A: a, B: b}
}

func (s *Sum) Shape() Shape { return s.A.Shape() }

func (s *Sum) Terminals() []Terminal {
	return append(s.A.Terminals(), s.B.Terminals()...)
}

func (s *Sum) EvalComponent(comp, cell int, x []float64) float64 {
	return s.A.EvalComponent(comp, cell, x) + s.B.EvalComponent(comp, cell, x)
}

// Difference is the pointwise difference of two equally shaped expressions.
type Difference struct {
	A, B Expression
}

func Sub(a, b Expression) *Difference {
	if !a.Shape().Equals(b.Shape()) {
		panic(fmt.Errorf("shape mismatch in Sub: %v vs %v", a.Shape(), b.Shape()))
	}
	return &Difference{A: a, B: b}
}

func (d *Difference) Shape() Shape { return d.A.Shape() }

func (d *Difference) Terminals() []Terminal {
	return append(d.A.Terminals(), d.B.Terminals()...)
}

func (d *Difference) EvalComponent(comp, cell int, x []float64) float64 {
	return d.A.EvalComponent(comp, cell, x) - d.B.EvalComponent(comp, cell, x)
}

// Product scales an expression of any shape by a scalar expression.
type Product struct {
	Scalar Expression
	Field  Expression
}

func Mul(scalar, f Expression) *Product {
	if scalar.Shape().Rank() != 0 {
		panic(fmt.Errorf("Mul needs a scalar left operand, got shape %v", scalar.Shape()))
	}
	return &Product{Scalar: scalar, Field: f}
}

func (p *Product) Shape() Shape { return p.Field.Shape() }

func (p *Product) Terminals() []Terminal {
	return append(p.Scalar.Terminals(), p.Field.Terminals()...)
}

func (p *Product) EvalComponent(comp, cell int, x []float64) float64 {
	return p.Scalar.EvalComponent(0, cell, x) * p.Field.EvalComponent(comp, cell, x)
}
