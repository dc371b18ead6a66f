package render

// Line visits every pixel of the segment (x0, y0)-(x1, y1) in order from the
// first endpoint to the second, using Bresenham's algorithm with a combined
// error term. Both endpoints are visited.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle visits the outline of a circle of radius r around (cx, cy). One
// octant is stepped with integer-only arithmetic and mirrored eight ways, so
// the outline is symmetric about both axes through the center. Points on the
// octant boundaries may be visited more than once.
func Circle(cx, cy, r int, plot func(x, y int)) {
	circleOctant(r, func(x, y int) {
		for _, p := range octants(x, y) {
			plot(cx+p[0], cy+p[1])
		}
	})
}

// FilledCircle fills a circle by drawing a spoke from each outline point to
// the center. Large radii can leave unlit gaps between spokes near the rim.
func FilledCircle(cx, cy, r int, line func(x0, y0, x1, y1 int)) {
	circleOctant(r, func(x, y int) {
		for _, p := range octants(x, y) {
			line(cx+p[0], cy+p[1], cx, cy)
		}
	})
}

// circleOctant steps the octant from (r, 0) up to the diagonal.
func circleOctant(r int, step func(x, y int)) {
	if r < 0 {
		return
	}

	r2 := r + r
	x, y := r, 0
	dy := -2
	dx := r2 + r2 - 4
	d := r2 - 1

	for y <= x {
		step(x, y)
		d += dy
		dy -= 4
		y++
		if d < 0 {
			d += dx
			dx -= 4
			x--
		}
	}
}

func octants(x, y int) [8][2]int {
	return [8][2]int{
		{x, y}, {-x, y}, {x, -y}, {-x, -y},
		{y, x}, {-y, x}, {y, -x}, {-y, -x},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
