package favicon

// kappa places the control points of a cubic Bézier approximating a quarter circle.
const kappa = 0.5522847498307936 // 4/3*(sqrt(2)-1)

// Ellipse returns the ellipse inscribed in the box (x0,y0)-(x1,y1). A box without area gives an empty path.
func Ellipse(x0, y0, x1, y1 float64) *Path {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if x1-x0 <= 0.0 || y1-y0 <= 0.0 {
		return &Path{}
	}

	cx, cy := (x0+x1)/2.0, (y0+y1)/2.0
	rx, ry := (x1-x0)/2.0, (y1-y0)/2.0
	kx, ky := kappa*rx, kappa*ry

	p := &Path{}
	p.MoveTo(x1, cy)
	p.CubeTo(x1, cy+ky, cx+kx, y1, cx, y1)
	p.CubeTo(cx-kx, y1, x0, cy+ky, x0, cy)
	p.CubeTo(x0, cy-ky, cx-kx, y0, cx, y0)
	p.CubeTo(cx+kx, y0, x1, cy-ky, x1, cy)
	p.Close()
	return p
}

// Circle returns a circle with center (cx,cy) and radius r.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx-r, cy-r, cx+r, cy+r)
}
