// Package gfx provides the small software pipeline used to draw the spinning cube.
//
// Pipeline (fixed):
//
//	Vertex → Rotate (Y, X, Z) → Project → Round → Rasterize → Buffer.
//
// Everything runs on float32 math, matching the single-precision behavior the
// animation was tuned for. Drawing goes through the Target interface so the same
// rasterizer can write into the owned Buffer or straight into an RGB565 framebuffer.
//
// Rounding of projected coordinates is ties-to-even (see RoundCoord). It is fixed
// because it decides pixel-exact output at half-pixel boundaries.
package gfx
