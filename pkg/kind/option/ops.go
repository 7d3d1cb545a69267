package option

import "github.com/ib-77/cata/pkg/kind"

var _ kind.Mapper[Option[int], Option[bool], int, bool] = Fmap[int, bool]
var _ kind.Lifter[Option[int], int] = Pure[int]
var _ kind.Zipper[Option[int], Option[int], Option[int], int, int, int] = ZipWith[int, int, int]
var _ kind.Binder[Option[int], Option[bool], int, bool] = AndThen[int, bool]

// Fmap applies f to the held value, if any. f runs at most once.
func Fmap[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// DMap is the repeatable flavor of Fmap.
func DMap[A, B any](o Option[A], f func(A) B) Option[B] {
	return Fmap(o, f)
}

func Void[A any](o Option[A]) Option[kind.Unit] {
	return kind.Void(Fmap[A, kind.Unit], o)
}

func DVoid[A any](o Option[A]) Option[kind.Unit] {
	return kind.Void(DMap[A, kind.Unit], o)
}

func Constant[A, B any](o Option[A], b B) Option[B] {
	return kind.Constant(Fmap[A, B], o, b)
}

func DConstant[A, B any](o Option[A], b B) Option[B] {
	return kind.Constant(DMap[A, B], o, b)
}

func Pure[A any](a A) Option[A] {
	return Some(a)
}

func DPure[A any](a A) Option[A] {
	return Some(a)
}

// ZipWith combines two held values with f; it is None unless both are Some.
func ZipWith[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if !oa.some || !ob.some {
		return None[C]()
	}
	return Some(f(oa.value, ob.value))
}

func DZipWith[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	return ZipWith(oa, ob, f)
}

func ZipMap[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	return kind.ZipMap(ZipWith[func(A) B, A, B], of, oa)
}

func DZipMap[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	return kind.ZipMap(DZipWith[func(A) B, A, B], of, oa)
}

// AndThen runs f on the held value; None short-circuits.
func AndThen[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.some {
		return f(o.value)
	}
	return None[B]()
}

// Traverse runs f on the held value inside the inner container described by
// eff. None becomes eff.Pure(None) and f is not called.
func Traverse[GA, GC, A, B any](eff kind.Effect[GA, GC, B, Option[B]], o Option[A], f func(A) GA) GC {
	if !o.some {
		return eff.Pure(None[B]())
	}
	return eff.Map(f(o.value), Some[B])
}

// Effect describes Option as the inner container of a traversal.
func Effect[A, C any]() kind.Effect[Option[A], Option[C], A, C] {
	return kind.Effect[Option[A], Option[C], A, C]{
		Pure:    DPure[C],
		Map:     DMap[A, C],
		ZipWith: DZipWith[C, A, C],
	}
}
