package gfx

import (
	"bytes"
	"image/png"
	"testing"
)

func TestBufferResetRestoresBackground(t *testing.T) {
	bg := RGB(0x10, 0x20, 0x30)
	b := NewBuffer(20, 10, bg)
	DrawLineInt(b, 0, 0, 19, 9, Red)
	DrawLineInt(b, 3, 0, 3, 9, Red)
	if b.Lit() == 0 {
		t.Fatalf("nothing drawn")
	}
	b.Reset()
	if got := b.Count(bg); got != 200 {
		t.Fatalf("Count(bg) after Reset = %d, want 200", got)
	}
}

func TestBufferClearChangesBackground(t *testing.T) {
	b := NewBuffer(4, 4, Black)
	b.SetPixel(1, 1, Red)
	b.Clear(Red)
	if b.Background() != Red || b.Count(Red) != 16 {
		t.Fatalf("Clear(Red): bg=%v count=%d", b.Background(), b.Count(Red))
	}
	b.SetPixel(0, 0, Black)
	b.Reset()
	if b.Count(Red) != 16 {
		t.Fatalf("Reset after Clear(Red) count = %d, want 16", b.Count(Red))
	}
}

func TestBufferCloneIndependent(t *testing.T) {
	b := NewBuffer(4, 4, Black)
	b.SetPixel(2, 2, Red)
	c := b.Clone()
	b.Reset()
	if c.ColorAt(2, 2) != Red {
		t.Fatalf("clone lost pixel after original Reset")
	}
	if b.Equal(c) {
		t.Fatalf("Equal = true after diverging")
	}
}

func TestBufferCopyToRGB565(t *testing.T) {
	b := NewBuffer(3, 2, Black)
	b.SetPixel(2, 1, Red)
	tgt := &RGB565Target{Buf: make([]byte, 3*2*2), Stride: 3 * 2, W: 3, H: 2}
	b.CopyTo(tgt)
	off := 1*tgt.Stride + 2*2
	got := uint16(tgt.Buf[off]) | uint16(tgt.Buf[off+1])<<8
	if got != 0xF800 {
		t.Fatalf("RGB565 at (2,1) = %#04x, want 0xf800", got)
	}
	if tgt.Buf[0] != 0 || tgt.Buf[1] != 0 {
		t.Fatalf("RGB565 at (0,0) = %#02x%02x, want 0", tgt.Buf[1], tgt.Buf[0])
	}
}

func TestBufferEncodesAsPNG(t *testing.T) {
	b := NewBuffer(5, 5, Black)
	b.SetPixel(4, 0, Red)
	var out bytes.Buffer
	if err := png.Encode(&out, b); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	r, g, bb, a := img.At(4, 0).RGBA()
	if r != 0xFFFF || g != 0 || bb != 0 || a != 0xFFFF {
		t.Fatalf("decoded (4,0) = %x %x %x %x, want red", r, g, bb, a)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Red, false},
		{"00ff00", RGB(0, 0xFF, 0), false},
		{"#fff", RGB(0xFF, 0xFF, 0xFF), false},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44), false},
		{"#12", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseHexColor(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := RGB(0xFF, 0, 0).Hex(); got != "#ff0000" {
		t.Fatalf("Hex = %q, want #ff0000", got)
	}
}
