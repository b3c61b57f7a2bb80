package geom

// BoundRect is an axis-aligned rectangle spanning Min to Max.
//
// Unlike image.Rectangle it is never canonicalized: a rectangle with
// Min > Max on either axis is simply empty.
type BoundRect[T Number] struct {
	Min, Max Vector2[T]
}

func RectFromBounds[T Number](xmin, ymin, xmax, ymax T) BoundRect[T] {
	return BoundRect[T]{
		Min: Vector2[T]{xmin, ymin},
		Max: Vector2[T]{xmax, ymax},
	}
}

// RectFromPoints returns the smallest rectangle enclosing points.
// ok is false when no points are given.
func RectFromPoints[T Number](points ...Vector2[T]) (r BoundRect[T], ok bool) {
	if len(points) == 0 {
		return BoundRect[T]{}, false
	}
	r = BoundRect[T]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r, true
}

// Intersection returns the overlap of r and o. The result may be empty.
func (r BoundRect[T]) Intersection(o BoundRect[T]) BoundRect[T] {
	return RectFromBounds(
		max(r.Min.X, o.Min.X),
		max(r.Min.Y, o.Min.Y),
		min(r.Max.X, o.Max.X),
		min(r.Max.Y, o.Max.Y),
	)
}

// Empty reports whether r has no area. Zero-width or zero-height
// rectangles are empty.
func (r BoundRect[T]) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

func (r BoundRect[T]) Dx() T { return r.Max.X - r.Min.X }
func (r BoundRect[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies in the half-open rectangle [Min, Max).
func (r BoundRect[T]) Contains(p Vector2[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}
