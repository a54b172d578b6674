// Command surfwarp warps an image through a bicubic Bézier surface and
// writes the result as PNG. It subdivides the surface into a grid,
// displaces the interior control points with a sine bulge, and runs the
// result through a save/restore round trip before rendering, mostly to
// have a cheap end-to-end smoke test for the library.
package main

import (
	"encoding/json"
	"flag"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"math"
	"os"

	"honnef.co/go/surface"
)

func main() {
	log.SetFlags(0)
	in := flag.String("in", "", "input image (png, jpeg, or gif)")
	out := flag.String("out", "out.png", "output png")
	res := flag.Int("res", 32, "tessellation resolution (quads per axis)")
	splits := flag.Int("splits", 1, "number of horizontal and vertical subdivisions")
	bulge := flag.Float64("bulge", 0.15, "bulge amplitude as a fraction of the image size")
	linear := flag.Bool("linear", false, "evaluate in linear preview mode")
	flag.Parse()
	if *in == "" {
		log.Fatal("surfwarp: -in is required")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatal(err)
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("surfwarp: decoding %s: %s", *in, err)
	}

	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	// Pixel space is y-down, so the top corners have the smaller y.
	m := surface.NewMesh(
		surface.Pt(0, 0), surface.Pt(w, 0),
		surface.Pt(0, h), surface.Pt(w, h),
	)
	for i := range *splits {
		cut := float64(i+1) / float64(*splits+1)
		m.SubdivideHorizontal(cut)
		m.SubdivideVertical(cut)
	}

	// Push every point away from the image center by a sine falloff.
	pool := m.Points()
	cx, cy := w/2, h/2
	r := math.Hypot(cx, cy)
	for id, cp := range pool.All() {
		pt := cp.Point
		d := math.Hypot(pt.X-cx, pt.Y-cy)
		s := 1 + *bulge*math.Cos(d/r*math.Pi/2)
		pool.Move(id, surface.Pt(cx+(pt.X-cx)*s, cy+(pt.Y-cy)*s), false)
	}

	// Round-trip the mesh through its JSON snapshot.
	buf, err := json.Marshal(m.Save())
	if err != nil {
		log.Fatal(err)
	}
	var snap surface.SerializedMesh
	if err := json.Unmarshal(buf, &snap); err != nil {
		log.Fatal(err)
	}
	if err := m.Restore(&snap); err != nil {
		log.Fatalf("surfwarp: restoring snapshot: %s", err)
	}

	mode := surface.ModeBezier
	if *linear {
		mode = surface.ModeLinear
	}
	m.Update(mode)

	pad := int(*bulge*math.Max(w, h)) + 1
	dst := image.NewRGBA(image.Rect(-pad, -pad, b.Dx()+pad, b.Dy()+pad))
	surface.WarpImage(dst, src, m, *res, mode)

	g, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()
	if err := png.Encode(g, dst); err != nil {
		log.Fatal(err)
	}
}
