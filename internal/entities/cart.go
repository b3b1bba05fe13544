package entities

// CartLine is a transient cart entry. Cart rows are a convenience cache,
// not a source of truth: they are cleared after a successful checkout and
// a stale row left behind by a crash is harmless.
type CartLine struct {
	UserID    int64
	ProductID int64
	Quantity  int
}
