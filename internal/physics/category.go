package physics

import "strings"

// Category tags a body for contact dispatch.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryObstacle
	CategoryGround
	CategoryScoreZone
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryPlayer:
		return "Player"
	case CategoryObstacle:
		return "Obstacle"
	case CategoryGround:
		return "Ground"
	case CategoryScoreZone:
		return "ScoreZone"
	default:
		return "Unknown"
	}
}

// CategorySet is a set of categories. CategoryNone is never a member.
type CategorySet uint16

// Categories builds a set from the given categories.
func Categories(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		if c == CategoryNone {
			continue
		}
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	if c == CategoryNone {
		return false
	}
	return s&(1<<c) != 0
}

// String lists the members, e.g. "{Player,Ground}".
func (s CategorySet) String() string {
	var names []string
	for c := CategoryPlayer; c <= CategoryScoreZone; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Pair is an unordered pair of categories, stored with A <= B.
type Pair struct {
	A, B Category
}

// PairOf normalizes two categories into a Pair.
func PairOf(a, b Category) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// String returns "A×B".
func (p Pair) String() string {
	return p.A.String() + "×" + p.B.String()
}
