package inventory

type Reason string

const (
	ReasonUntracked    Reason = "untracked"
	ReasonBackorder    Reason = "backorder"
	ReasonInStock      Reason = "in_stock"
	ReasonInsufficient Reason = "insufficient_stock"
)

type Availability struct {
	Available bool
	// AvailableQty is set only when the request cannot be met.
	AvailableQty *int
	Reason       Reason
}

// CheckAvailability evaluates untracked, then backorders, then on-hand quantity.
func CheckAvailability(r Record, requested int) Availability {
	if !r.trackQuantity {
		return Availability{Available: true, Reason: ReasonUntracked}
	}
	if r.allowBackorders {
		return Availability{Available: true, Reason: ReasonBackorder}
	}
	if r.quantity >= requested {
		return Availability{Available: true, Reason: ReasonInStock}
	}
	qty := r.quantity
	return Availability{Available: false, AvailableQty: &qty, Reason: ReasonInsufficient}
}

type Direction string

const (
	Decrease Direction = "decrease"
	Increase Direction = "increase"
)

func (d Direction) IsValid() bool {
	return d == Decrease || d == Increase
}

type DeltaResult struct {
	Record Record
	// Clamped reports that a decrease hit zero before the full amount was removed.
	Clamped  bool
	LowStock bool
}

// ApplyDelta moves stock in the given direction. Decreases floor at zero;
// untracked records are returned unchanged.
func ApplyDelta(r Record, qty int, dir Direction) (DeltaResult, error) {
	if qty <= 0 {
		return DeltaResult{}, ErrInvalidQuantity
	}
	if !dir.IsValid() {
		return DeltaResult{}, ErrInvalidDirection
	}
	if !r.trackQuantity {
		return DeltaResult{Record: r}, nil
	}

	out := r
	res := DeltaResult{}
	switch dir {
	case Decrease:
		out.quantity -= qty
		if out.quantity < 0 {
			out.quantity = 0
			res.Clamped = true
		}
		res.LowStock = out.quantity <= out.lowStockThreshold
	case Increase:
		out.quantity += qty
	default:
		return DeltaResult{}, ErrInvalidDirection
	}
	res.Record = out
	return res, nil
}

// CanDecrementAtomically mirrors the storage-level guard used by the
// conditional decrement: the update only applies when this returns true.
func CanDecrementAtomically(r Record, qty int) bool {
	return !r.trackQuantity || r.allowBackorders || r.quantity >= qty
}
