package domain

// Outcome of evaluating one route.
// A verdict with no reasons is safe; otherwise each reason names one flagged
// stop, in visiting order.
type RouteVerdict struct {
	Reasons []string
}

func SafeVerdict() RouteVerdict { return RouteVerdict{} }

func UnsafeVerdict(reasons ...string) RouteVerdict {
	return RouteVerdict{Reasons: append([]string(nil), reasons...)}
}

func (v RouteVerdict) Safe() bool { return len(v.Reasons) == 0 }
