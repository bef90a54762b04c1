package elem

// Ordered is implemented by values whose lanewise comparisons produce a
// mask type M.
type Ordered[V, M any] interface {
	Eq(V) M
	Ne(V) M
	Less(V) M
	LessEq(V) M
	Greater(V) M
	GreaterEq(V) M
}

// Selectable is implemented by values that can blend with another value
// under a mask: v.Select(m, w) keeps v where m is set.
type Selectable[V, M any] interface {
	Select(m M, w V) V
}

func Eq[V Ordered[V, M], M any](a, b V) M        { return a.Eq(b) }
func Ne[V Ordered[V, M], M any](a, b V) M        { return a.Ne(b) }
func Less[V Ordered[V, M], M any](a, b V) M      { return a.Less(b) }
func LessEq[V Ordered[V, M], M any](a, b V) M    { return a.LessEq(b) }
func Greater[V Ordered[V, M], M any](a, b V) M   { return a.Greater(b) }
func GreaterEq[V Ordered[V, M], M any](a, b V) M { return a.GreaterEq(b) }

// Select returns the lanes of a where m is set and those of b elsewhere.
func Select[V Selectable[V, M], M any](m M, a, b V) V {
	return a.Select(m, b)
}
