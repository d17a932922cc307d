package favicon

import (
	"math"

	"golang.org/x/image/vector"
)

// PathCmd is a path segment command.
type PathCmd int

// see PathCmd
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

// Path is a sequence of subpaths in pixel coordinates, where y points down. Each command stores its end point and control points in d.
type Path struct {
	cmds []PathCmd
	d    []float64
}

// Empty returns true if p contains no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Append appends the commands of q to p.
func (p *Path) Append(q *Path) *Path {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	return p
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	q := &Path{}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// QuadTo adds a quadratic Bézier to (x,y) with control point (cpx,cpy).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, cpx, cpy, x, y)
}

// CubeTo adds a cubic Bézier to (x,y) with control points (cpx1,cpy1) and (cpx2,cpy2).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, cpx1, cpy1, cpx2, cpy2, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubeToCmd:
		return 6
	}
	return 0
}

// Translate moves every point of p by (x,y) in place.
func (p *Path) Translate(x, y float64) *Path {
	for i := 0; i < len(p.d); i += 2 {
		p.d[i+0] += x
		p.d[i+1] += y
	}
	return p
}

// Bounds returns the control box of p: the smallest rectangle containing all end and control points.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i])
		xmax = math.Max(xmax, p.d[i])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax, ymax}
}

// ToRasterizer rasterizes the path onto ras. Coordinates are used as is, so p must be expressed in the rasterizer's pixel space.
func (p *Path) ToRasterizer(ras *vector.Rasterizer) {
	open := false
	i := 0
	for _, cmd := range p.cmds {
		d := p.d[i : i+cmdLen(cmd)]
		switch cmd {
		case MoveToCmd:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(d[0]), float32(d[1]))
			open = true
		case LineToCmd:
			ras.LineTo(float32(d[0]), float32(d[1]))
		case QuadToCmd:
			ras.QuadTo(float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3]))
		case CubeToCmd:
			ras.CubeTo(float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3]), float32(d[4]), float32(d[5]))
		case CloseCmd:
			if open {
				ras.ClosePath()
			}
			open = false
		}
		i += len(d)
	}
	if open {
		ras.ClosePath()
	}
}

// Rect is a rectangle given by its minimum and maximum corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// W returns the width of r.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height of r.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}
