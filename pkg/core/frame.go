package core

import "math"

// Frame is an orthonormal coordinate frame positioned at O.
// X, Y, Z are unit axes; Z doubles as the shading normal for
// surface frames and as the facing axis for light placements.
type Frame struct {
	O Vec3
	X Vec3
	Y Vec3
	Z Vec3
}

// IdentityFrame returns the world frame at the origin
func IdentityFrame() Frame {
	return Frame{
		O: Vec3{},
		X: Vec3{X: 1},
		Y: Vec3{Y: 1},
		Z: Vec3{Z: 1},
	}
}

// FrameFromZ builds an orthonormal frame at o whose Z axis is the
// given direction. The remaining axes are chosen deterministically.
func FrameFromZ(o, z Vec3) Frame {
	zAxis := z.Normalize()
	var helper Vec3
	if math.Abs(zAxis.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}
	xAxis := helper.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return Frame{O: o, X: xAxis, Y: yAxis, Z: zAxis}
}

// LookAtFrame builds a frame at eye with Z pointing away from center,
// so the frame's -Z axis faces the target. Up must not be parallel to
// the eye-center direction.
func LookAtFrame(eye, center, up Vec3) Frame {
	zAxis := eye.Subtract(center).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return Frame{O: eye, X: xAxis, Y: yAxis, Z: zAxis}
}

// TransformPoint maps a point from frame coordinates to world coordinates
func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.O.Add(f.X.Multiply(p.X)).Add(f.Y.Multiply(p.Y)).Add(f.Z.Multiply(p.Z))
}

// TransformPointInverse maps a world point into frame coordinates
func (f Frame) TransformPointInverse(p Vec3) Vec3 {
	d := p.Subtract(f.O)
	return Vec3{X: d.Dot(f.X), Y: d.Dot(f.Y), Z: d.Dot(f.Z)}
}

// TransformDirection maps a direction from frame coordinates to world coordinates
func (f Frame) TransformDirection(d Vec3) Vec3 {
	return f.X.Multiply(d.X).Add(f.Y.Multiply(d.Y)).Add(f.Z.Multiply(d.Z))
}

// TransformDirectionInverse maps a world direction into frame coordinates
func (f Frame) TransformDirectionInverse(d Vec3) Vec3 {
	return Vec3{X: d.Dot(f.X), Y: d.Dot(f.Y), Z: d.Dot(f.Z)}
}

// FaceForward flips the frame so its Z axis opposes the incoming
// direction d. Y flips with Z to keep the frame right-handed. Frames
// already facing d are returned unchanged.
func (f Frame) FaceForward(d Vec3) Frame {
	if d.Dot(f.Z) <= 0 {
		return f
	}
	return Frame{O: f.O, X: f.X, Y: f.Y.Negate(), Z: f.Z.Negate()}
}
