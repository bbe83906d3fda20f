package gyroid

// Progress reports pipeline advancement as a percentage checkpoint plus a
// human-readable phase name, per spec.md §4.8's checkpoint list
// (5, 28, 30, 75, 80, 90, 100).
type Progress struct {
	Percent int
	Phase   string
}

// ProgressFunc receives progress reports. A nil ProgressFunc is legal and
// silently skips reporting.
type ProgressFunc func(Progress)

func (f ProgressFunc) report(percent int, phase string) {
	if f == nil {
		return
	}
	f(Progress{Percent: percent, Phase: phase})
}
