package model

// Ordering is a signed permutation of item ids: a negative id -k means
// "place item k rotated". Each |id| appears exactly once and is a valid
// item id. This is the unit the genetic algorithm and tabu search both
// operate on; LGFI never sees it directly, only the item sequence it
// decodes into (see Decode).
type Ordering []int32

// Clone returns an independent copy of the ordering.
func (o Ordering) Clone() Ordering {
	c := make(Ordering, len(o))
	copy(c, o)
	return c
}

// Decode materializes the item sequence implied by the ordering: positive
// ids keep the item's original orientation, negative ids rotate it.
func Decode(items []Item, ordering Ordering) []Item {
	out := make([]Item, len(ordering))
	for i, signed := range ordering {
		id := signed
		rotated := false
		if signed < 0 {
			id = -signed
			rotated = true
		}
		it, ok := ItemByID(items, id)
		if !ok {
			continue
		}
		if rotated {
			it.Rotate()
		}
		out[i] = it
	}
	return out
}

// Population is a collection of orderings evaluated together by the genetic
// algorithm driver.
type Population []Ordering

// Clone returns an independent copy of the population.
func (p Population) Clone() Population {
	c := make(Population, len(p))
	for i, o := range p {
		c[i] = o.Clone()
	}
	return c
}
