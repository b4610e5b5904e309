package field

import "math"

// Form is an integrated functional: an integrand paired with its test (and
// for bilinear forms, trial) arguments. A form has been reduced below
// pointwise evaluability and is no longer a field.
type Form struct {
	Integrand Expression
	Arguments []*Argument
}

func NewLinearForm(integrand Expression, test *Argument) *Form {
	return &Form{Integrand: integrand, Arguments: []*Argument{test}}
}

func NewBilinearForm(integrand Expression, trial, test *Argument) *Form {
	return &Form{Integrand: integrand, Arguments: []*Argument{trial, test}}
}

func (f *Form) Shape() Shape { return ScalarShape() }

func (f *Form) Terminals() (terms []Terminal) {
	terms = f.Integrand.Terminals()
	for _, a := range f.Arguments {
		terms = append(terms, a)
	}
	return
}

func (f *Form) EvalComponent(comp, cell int, x []float64) float64 {
	return math.NaN()
}
