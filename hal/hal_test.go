package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		p := rgb565(tc.r, tc.g, tc.b)
		if p != tc.want {
			t.Fatalf("rgb565(%d,%d,%d) = %#04x, want %#04x", tc.r, tc.g, tc.b, p, tc.want)
		}
		r, g, b := rgb888From565(p)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(%#04x) = %d,%d,%d, want %d,%d,%d", p, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestFramebufferPresentPublishes(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0, 0)

	snap := make([]byte, len(fb.buf))
	if n := fb.snapshotRGB565(snap); n != 0 || snap[1] != 0 {
		t.Fatalf("snapshot before Present = %d presents, byte %#x; want 0, 0", n, snap[1])
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if n := fb.snapshotRGB565(snap); n != 1 || snap[0] != 0x00 || snap[1] != 0xF8 {
		t.Fatalf("snapshot after Present = %d presents, %#x %#x; want 1, 0x00 0xf8", n, snap[0], snap[1])
	}

	rgba := make([]byte, 4*2*4)
	rgbaFrom565(rgba, snap)
	if rgba[0] != 0xFF || rgba[1] != 0 || rgba[2] != 0 || rgba[3] != 0xFF {
		t.Fatalf("rgba[0:4] = %v, want opaque red", rgba[0:4])
	}
}

func TestHostDisplay(t *testing.T) {
	h := New(10, 6)
	fb := h.Display().Framebuffer()
	if fb == nil {
		t.Fatalf("Framebuffer() = nil")
	}
	if fb.Width() != 10 || fb.Height() != 6 || fb.StrideBytes() != 20 || len(fb.Buffer()) != 120 {
		t.Fatalf("framebuffer = %dx%d stride %d len %d", fb.Width(), fb.Height(), fb.StrideBytes(), len(fb.Buffer()))
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("Format() = %v, want RGB565", fb.Format())
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		return func() error { steps++; return nil }, nil
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless() = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
}

func TestRunHeadlessNewAppError(t *testing.T) {
	boom := errors.New("no app")
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(h HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() = %v, want deadline exceeded", err)
	}
}
