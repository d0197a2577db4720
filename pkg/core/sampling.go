package core

import "math"

// SampleHemisphereCosine draws a cosine-weighted direction in the
// hemisphere around the frame's Z axis and returns it in world
// coordinates. sample is a pair of uniform values in [0,1).
func SampleHemisphereCosine(frame Frame, sample Vec2) Vec3 {
	z := math.Sqrt(sample.Y)
	r := math.Sqrt(1 - z*z)
	phi := 2 * math.Pi * sample.X
	local := NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
	return frame.TransformDirection(local)
}

// HemisphereCosinePdf returns the pdf of SampleHemisphereCosine for a
// world direction: cos(theta)/pi above the horizon, zero at or below it.
func HemisphereCosinePdf(frame Frame, dir Vec3) float64 {
	return math.Max(dir.Dot(frame.Z), 0) / math.Pi
}
