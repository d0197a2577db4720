package core

import "sort"

// Distribution1D is a piecewise-constant probability distribution over
// [0,1), built from non-negative weights. Sampling concentrates draws
// where the weights are large.
type Distribution1D struct {
	weights  []float64
	cdf      []float64
	integral float64
}

// NewDistribution1D builds a distribution from the given weights.
// Weights must be non-negative; an all-zero set yields a distribution
// that samples uniformly but reports zero pdf.
func NewDistribution1D(weights []float64) *Distribution1D {
	n := len(weights)
	d := &Distribution1D{
		weights: append([]float64(nil), weights...),
		cdf:     make([]float64, n+1),
	}
	for i := 0; i < n; i++ {
		d.cdf[i+1] = d.cdf[i] + d.weights[i]/float64(n)
	}
	d.integral = d.cdf[n]
	if d.integral == 0 {
		for i := 1; i <= n; i++ {
			d.cdf[i] = float64(i) / float64(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			d.cdf[i] /= d.integral
		}
	}
	return d
}

// Count returns the number of piecewise-constant segments
func (d *Distribution1D) Count() int {
	return len(d.weights)
}

// Integral returns the average weight over [0,1)
func (d *Distribution1D) Integral() float64 {
	return d.integral
}

// SampleContinuous maps a uniform u in [0,1) to a sample x distributed
// according to the weights, returning x, its pdf, and the segment index.
func (d *Distribution1D) SampleContinuous(u float64) (x, pdf float64, offset int) {
	offset = sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] > u }) - 1
	offset = max(0, min(offset, d.Count()-1))

	du := u - d.cdf[offset]
	if width := d.cdf[offset+1] - d.cdf[offset]; width > 0 {
		du /= width
	}
	if d.integral > 0 {
		pdf = d.weights[offset] / d.integral
	}
	x = (float64(offset) + du) / float64(d.Count())
	return x, pdf, offset
}

// Pdf returns the probability density at x in [0,1)
func (d *Distribution1D) Pdf(x float64) float64 {
	if d.integral == 0 {
		return 0
	}
	i := max(0, min(int(x*float64(d.Count())), d.Count()-1))
	return d.weights[i] / d.integral
}

// Distribution2D is a piecewise-constant distribution over the unit
// square, built from a row-major grid of non-negative weights. Draws
// sample a row from the marginal distribution of row sums, then a
// column from that row's conditional distribution.
type Distribution2D struct {
	conditional []*Distribution1D
	marginal    *Distribution1D
}

// NewDistribution2D builds a distribution from nu*nv weights laid out
// row-major (v rows of nu columns each).
func NewDistribution2D(weights []float64, nu, nv int) *Distribution2D {
	d := &Distribution2D{conditional: make([]*Distribution1D, nv)}
	marginalWeights := make([]float64, nv)
	for v := 0; v < nv; v++ {
		d.conditional[v] = NewDistribution1D(weights[v*nu : (v+1)*nu])
		marginalWeights[v] = d.conditional[v].Integral()
	}
	d.marginal = NewDistribution1D(marginalWeights)
	return d
}

// SampleContinuous maps a pair of uniform values to a point in the unit
// square distributed according to the weights, with its pdf.
func (d *Distribution2D) SampleContinuous(u Vec2) (Vec2, float64) {
	y, pdfY, row := d.marginal.SampleContinuous(u.Y)
	x, pdfX, _ := d.conditional[row].SampleContinuous(u.X)
	return NewVec2(x, y), pdfX * pdfY
}

// Pdf returns the probability density at a point in the unit square
func (d *Distribution2D) Pdf(p Vec2) float64 {
	if d.marginal.Integral() == 0 {
		return 0
	}
	nv := len(d.conditional)
	nu := d.conditional[0].Count()
	iv := max(0, min(int(p.Y*float64(nv)), nv-1))
	iu := max(0, min(int(p.X*float64(nu)), nu-1))
	return d.conditional[iv].weights[iu] / d.marginal.Integral()
}
