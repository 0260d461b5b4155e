package pipeline

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func TestHomogenize(t *testing.T) {
	got := Homogenize(mgl.Vec3{1.5, -2.0, 3.25})
	want := mgl.Vec4{1.5, -2.0, 3.25, 1.0}
	if got != want {
		t.Errorf("Homogenize: expected %v, got %v", want, got)
	}
}

func TestIdentityTransform(t *testing.T) {
	v := Vertex{
		Position: mgl.Vec3{1, 2, 3},
		Color:    mgl.Vec4{0, 1, 0, 1},
	}

	tests := []struct {
		name      string
		transform Transform
	}{
		{"MVP", MVP{Model: mgl.Ident4(), View: mgl.Ident4(), Proj: mgl.Ident4()}},
		{"ViewProj", ViewProj{Matrix: mgl.Ident4()}},
	}

	for _, tt := range tests {
		out := TransformVertex(tt.transform, v)
		wantClip := mgl.Vec4{1, 2, 3, 1}
		if !out.ClipPosition.ApproxEqualThreshold(wantClip, epsilon) {
			t.Errorf("%s: expected clip position %v, got %v", tt.name, wantClip, out.ClipPosition)
		}
		if out.Color != v.Color {
			t.Errorf("%s: expected color %v, got %v", tt.name, v.Color, out.Color)
		}
	}
}

func TestViewProjScaling(t *testing.T) {
	// Scale3D(2, 2, 2) is diag(2, 2, 2, 1)
	vp := ViewProj{Matrix: mgl.Scale3D(2, 2, 2)}
	out := TransformVertex(vp, Vertex{Position: mgl.Vec3{1, 1, 1}})

	want := mgl.Vec4{2, 2, 2, 1}
	if !out.ClipPosition.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Expected clip position %v, got %v", want, out.ClipPosition)
	}
}

func TestViewProjAppliedOnce(t *testing.T) {
	vp := ViewProj{Matrix: mgl.Translate3D(1, 2, 3).Mul4(mgl.Scale3D(2, 2, 2))}
	position := mgl.Vec4{1, -1, 0.5, 1}

	out := vp.Apply(position)
	want := vp.Matrix.Mul4x1(position)
	if !out.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Expected %v, got %v", want, out)
	}
}

func TestMVPComposition(t *testing.T) {
	model := mgl.Translate3D(1, 2, 3).Mul4(mgl.HomogRotate3DY(0.7))
	view := mgl.LookAtV(mgl.Vec3{0, 1, 5}, mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 1, 0})
	proj := mgl.Perspective(mgl.DegToRad(45), 16.0/9.0, 0.01, 100.0)

	transform := MVP{Model: model, View: view, Proj: proj}
	v := Vertex{Position: mgl.Vec3{0.3, -0.6, 1.1}, Color: mgl.Vec4{1, 0, 0, 1}}

	out := TransformVertex(transform, v)
	want := proj.Mul4(view).Mul4(model).Mul4x1(v.Position.Vec4(1))
	if !out.ClipPosition.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Expected clip position %v, got %v", want, out.ClipPosition)
	}
}

func TestCombinedMatchesSeparate(t *testing.T) {
	transform := MVP{
		Model: mgl.HomogRotate3DZ(1.2),
		View:  mgl.LookAtV(mgl.Vec3{3, 2, 7}, mgl.Vec3{-2, 0.5, 0}, mgl.Vec3{0, 1, 0}),
		Proj:  mgl.Perspective(mgl.DegToRad(90), 4.0/3.0, 0.1, 50.0),
	}
	combined := transform.Combined()

	positions := []mgl.Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-5, 0.25, 10},
	}
	for _, p := range positions {
		separate := TransformVertex(transform, Vertex{Position: p})
		precombined := TransformVertex(combined, Vertex{Position: p})
		if !separate.ClipPosition.ApproxEqualThreshold(precombined.ClipPosition, epsilon) {
			t.Errorf("Position %v: separate %v != precombined %v", p, separate.ClipPosition, precombined.ClipPosition)
		}
	}
}

func TestColorPassThrough(t *testing.T) {
	transforms := []struct {
		name      string
		transform Transform
	}{
		{"identity MVP", MVP{Model: mgl.Ident4(), View: mgl.Ident4(), Proj: mgl.Ident4()}},
		{"perspective MVP", MVP{
			Model: mgl.Translate3D(-1, 0, 4),
			View:  mgl.LookAtV(mgl.Vec3{0, 0, 5}, mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 1, 0}),
			Proj:  mgl.Perspective(mgl.DegToRad(60), 1.0, 0.1, 10.0),
		}},
		{"scaling ViewProj", ViewProj{Matrix: mgl.Scale3D(3, -2, 0.5)}},
		{"zero ViewProj", ViewProj{}},
	}
	colors := []mgl.Vec4{
		{0, 1, 0, 1},
		{1, 0.5, 0, 0.25},
		{0, 0, 0, 0},
	}

	for _, tt := range transforms {
		for _, c := range colors {
			out := TransformVertex(tt.transform, Vertex{Position: mgl.Vec3{1, 2, 3}, Color: c})
			if out.Color != c {
				t.Errorf("%s: expected color %v, got %v", tt.name, c, out.Color)
			}
		}
	}
}
