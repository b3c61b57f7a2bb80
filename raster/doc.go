// Package raster is a minimal software triangle rasterizer.
//
// Pipeline (fixed):
//
//	Triangles → Transform → Projection → Backface cull → Screen clip → Fill.
//
// A Renderer owns a row-major framebuffer of Colors and a perspective
// projection fixed at construction time. Each Render call draws one
// ordered triangle list. There is no depth buffer: triangles are drawn in
// list order and later triangles overwrite earlier ones.
//
// The rasterizer's y axis points up, so row 0 of the framebuffer is the
// bottom of the image. Blit can flip rows when copying into a Target.
package raster
