package kind

// Unit is the informationless value Void fills a container with.
type Unit = struct{}

// Mapper transforms every value held by fa, keeping the shape of fa.
type Mapper[FA, FB, A, B any] func(fa FA, f func(A) B) FB

// Lifter injects a bare value into the smallest container holding it.
type Lifter[FA, A any] func(a A) FA

// Zipper combines two containers of the same shape value by value.
type Zipper[FA, FB, FC, A, B, C any] func(fa FA, fb FB, f func(A, B) C) FC

// Binder runs a container-valued continuation once the value of fa is known.
type Binder[FA, FB, A, B any] func(fa FA, f func(A) FB) FB

// Void forgets every held value and keeps the shape.
func Void[FA, FU, A any](fmap func(FA, func(A) Unit) FU, fa FA) FU {
	return fmap(fa, func(A) Unit { return Unit{} })
}

// Constant replaces every held value with b.
func Constant[FA, FB, A, B any](fmap func(FA, func(A) B) FB, fa FA, b B) FB {
	return fmap(fa, func(A) B { return b })
}

// ZipMap applies the functions held by fs to the values held by fa,
// pairing them with zip.
func ZipMap[FF, FA, FB, A, B any](zip func(FF, FA, func(func(A) B, A) B) FB, fs FF, fa FA) FB {
	return zip(fs, fa, func(f func(A) B, a A) B { return f(a) })
}
