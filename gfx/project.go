package gfx

// Projector maps rotated object-space points to buffer coordinates.
//
// The camera sits at CameraDistance on the Z axis looking at the origin. Project is
// singular when p.Z == CameraDistance; callers keep the camera outside the model's
// bounding sphere (config.Validate enforces this for the cube) so it is not guarded.
type Projector struct {
	Center         Vec2
	CameraDistance Scalar
}

// NewProjector returns a projector centered on a w×h buffer.
func NewProjector(w, h int, cameraDistance Scalar) Projector {
	return Projector{
		Center:         V2(Scalar(w)/2, Scalar(h)/2),
		CameraDistance: cameraDistance,
	}
}

// Project applies the perspective divide and viewport mapping.
func (pr Projector) Project(p Vec3) Vec2 {
	z := 1 / (pr.CameraDistance - p.Z)
	x := p.X * z
	y := p.Y * z
	return Vec2{
		X: pr.Center.X + x*pr.Center.X,
		Y: pr.Center.Y + y*pr.Center.Y,
	}
}
