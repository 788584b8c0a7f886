package viz

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraEyeOrbit(t *testing.T) {
	cam := NewCamera(2)
	cam.Yaw = 0
	cam.Pitch = 0
	eye := cam.Eye()
	want := mgl64.Vec3{2, 0, 0}
	if eye.Sub(want).Len() > 1e-12 {
		t.Fatalf("eye = %v, want %v", eye, want)
	}

	cam.Zoom = 2
	if r := cam.Eye().Len(); math.Abs(r-1) > 1e-12 {
		t.Fatalf("zoomed orbit radius = %v, want 1", r)
	}

	cam.Pivot = mgl64.Vec3{0, 0, -1}
	eye = cam.Eye()
	if math.Abs(eye.Z()+1) > 1e-12 {
		t.Fatalf("pivot offset not applied: %v", eye)
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera(3)
	cam.Rotate(0, 10)
	if cam.Pitch != maxPitch {
		t.Fatalf("pitch = %v, want clamp at %v", cam.Pitch, maxPitch)
	}
	cam.Rotate(0, -100)
	if cam.Pitch != -maxPitch {
		t.Fatalf("pitch = %v, want clamp at %v", cam.Pitch, -maxPitch)
	}
	cam.Rotate(1.5, 0)
	if math.Abs(cam.Yaw-2.1) > 1e-12 {
		t.Fatalf("yaw = %v, want 2.1", cam.Yaw)
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera(3)
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Fatalf("zoom in unbounded: %v", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.2 {
		t.Fatalf("zoom out unbounded: %v", cam.Zoom)
	}
}

func TestProjectPivotHitsCenter(t *testing.T) {
	cam := NewCamera(3)
	vp := cam.ViewProjection(1)
	x, y, ok := Project(vp, cam.Pivot, 128, 128)
	if !ok {
		t.Fatal("pivot should be visible")
	}
	if x < 62 || x > 66 || y < 62 || y > 66 {
		t.Fatalf("pivot projected to (%d,%d), want near (64,64)", x, y)
	}
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	cam := NewCamera(3)
	vp := cam.ViewProjection(1)
	eye := cam.Eye()
	behind := eye.Add(eye.Sub(cam.Pivot))
	if _, _, ok := Project(vp, behind, 64, 64); ok {
		t.Fatal("point behind the camera should not project")
	}
}

func TestProjectRejectsNonFinite(t *testing.T) {
	cam := NewCamera(3)
	vp := cam.ViewProjection(1)
	nan := math.NaN()
	if _, _, ok := Project(vp, mgl64.Vec3{nan, nan, nan}, 64, 64); ok {
		t.Fatal("non-finite point should not project")
	}
}

func TestProjectDepthOrderIrrelevant(t *testing.T) {
	// Two points on the view ray project to the same pixel; the canvas
	// has no occlusion so both must land.
	cam := NewCamera(3)
	vp := cam.ViewProjection(1)
	near := cam.Pivot
	far := cam.Pivot.Add(cam.Pivot.Sub(cam.Eye()).Normalize().Mul(0.5))
	x0, y0, ok0 := Project(vp, near, 64, 64)
	x1, y1, ok1 := Project(vp, far, 64, 64)
	if !ok0 || !ok1 {
		t.Fatal("both points should be visible")
	}
	if absInt(x0-x1) > 1 || absInt(y0-y1) > 1 {
		t.Fatalf("points on one ray projected apart: (%d,%d) vs (%d,%d)", x0, y0, x1, y1)
	}
}
