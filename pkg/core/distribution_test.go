package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistribution1D_UniformWeights(t *testing.T) {
	d := NewDistribution1D([]float64{1, 1, 1, 1})

	if math.Abs(d.Integral()-1) > 1e-12 {
		t.Errorf("Expected integral 1, got %v", d.Integral())
	}

	const tolerance = 1e-9
	for _, u := range []float64{0, 0.1, 0.37, 0.5, 0.81, 0.999} {
		x, pdf, _ := d.SampleContinuous(u)
		if math.Abs(x-u) > tolerance {
			t.Errorf("Uniform weights should map u=%v to itself, got %v", u, x)
		}
		if math.Abs(pdf-1) > tolerance {
			t.Errorf("Uniform weights should have pdf 1, got %v", pdf)
		}
	}
}

func TestDistribution1D_Concentration(t *testing.T) {
	// All the weight sits in the third of four segments
	d := NewDistribution1D([]float64{0, 0, 1, 0})
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		x, pdf, offset := d.SampleContinuous(random.Float64())
		if x < 0.5 || x >= 0.75 {
			t.Fatalf("Sample %v escaped the weighted segment [0.5, 0.75)", x)
		}
		if offset != 2 {
			t.Fatalf("Expected segment 2, got %d", offset)
		}
		if math.Abs(pdf-4) > 1e-9 {
			t.Fatalf("Expected pdf 4 inside the weighted segment, got %v", pdf)
		}
	}

	if pdf := d.Pdf(0.6); math.Abs(pdf-4) > 1e-9 {
		t.Errorf("Pdf(0.6) = %v, want 4", pdf)
	}
	if pdf := d.Pdf(0.1); pdf != 0 {
		t.Errorf("Pdf(0.1) = %v, want 0", pdf)
	}
}

func TestDistribution1D_ZeroWeights(t *testing.T) {
	d := NewDistribution1D([]float64{0, 0, 0})

	x, pdf, _ := d.SampleContinuous(0.5)
	if math.Abs(x-0.5) > 1e-9 {
		t.Errorf("Zero weights should fall back to uniform sampling, got %v", x)
	}
	if pdf != 0 {
		t.Errorf("Zero weights should report pdf 0, got %v", pdf)
	}
}

func TestDistribution2D_SampleAndPdf(t *testing.T) {
	// 2x2 grid, all weight in the cell at (u, v) in [0.5,1)x[0.5,1)
	d := NewDistribution2D([]float64{0, 0, 0, 4}, 2, 2)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		u := NewVec2(random.Float64(), random.Float64())
		p, pdf := d.SampleContinuous(u)

		if p.X < 0.5 || p.Y < 0.5 {
			t.Fatalf("Sample %v escaped the weighted cell", p)
		}
		if math.Abs(pdf-4) > 1e-9 {
			t.Fatalf("Expected pdf 4, got %v", pdf)
		}
		if math.Abs(d.Pdf(p)-pdf) > 1e-9 {
			t.Fatalf("Pdf(%v) = %v disagrees with sampled pdf %v", p, d.Pdf(p), pdf)
		}
	}

	if pdf := d.Pdf(NewVec2(0.25, 0.25)); pdf != 0 {
		t.Errorf("Pdf outside the weighted cell = %v, want 0", pdf)
	}
}

func TestDistribution2D_MarginalRows(t *testing.T) {
	// Second row carries three times the weight of the first
	d := NewDistribution2D([]float64{1, 1, 3, 3}, 2, 2)
	random := rand.New(rand.NewSource(7))

	const n = 20000
	topRow := 0
	for i := 0; i < n; i++ {
		p, _ := d.SampleContinuous(NewVec2(random.Float64(), random.Float64()))
		if p.Y >= 0.5 {
			topRow++
		}
	}

	fraction := float64(topRow) / n
	if math.Abs(fraction-0.75) > 0.02 {
		t.Errorf("Expected ~75%% of samples in the heavy row, got %v", fraction)
	}
}
