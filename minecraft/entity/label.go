package entity

import "github.com/lifei6671/guizhanlib/strutil"

type label[T ~string] struct {
	id      T
	english string
	chinese string
}

func ids[T ~string](table []label[T]) []T {
	out := make([]T, 0, len(table))
	for _, l := range table {
		out = append(out, l.id)
	}
	return out
}

func find[T ~string](table []label[T], id T) (label[T], bool) {
	for _, l := range table {
		if l.id == id {
			return l, true
		}
	}
	return label[T]{}, false
}

func fromEnglish[T ~string](table []label[T], english string) (T, bool) {
	humanized := strutil.Humanize(english)
	for _, l := range table {
		if l.english == humanized {
			return l.id, true
		}
	}
	var zero T
	return zero, false
}
