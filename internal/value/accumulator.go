package value

// accumulator keeps the running sum of root-phase per-board outputs and of
// the swapped range masses they were rescaled with, aligned as
// sums[state][board][player][hand] and mass[state][board][player].
type accumulator struct {
	sums []float32
	mass []float32
}

func (a *accumulator) reset(rows, hands int) {
	a.sums = resize(a.sums, rows*hands)
	a.mass = resize(a.mass, rows)
	for i := range a.sums {
		a.sums[i] = 0
	}
	for i := range a.mass {
		a.mass[i] = 0
	}
}

func (a *accumulator) add(values, mass []float32) {
	for i, v := range values[:len(a.sums)] {
		a.sums[i] += v
	}
	for i, m := range mass[:len(a.mass)] {
		a.mass[i] += m
	}
}

// averaged divides the value sums by the mass sums per (state, board,
// player) into a fresh slice. Rows that never accumulated mass divide by
// one, so an untouched accumulator averages to zeros rather than NaNs.
func (a *accumulator) averaged(hands int) []float32 {
	out := make([]float32, len(a.sums))
	for r, m := range a.mass {
		if m == 0 {
			m = 1
		}
		for i := r * hands; i < (r+1)*hands; i++ {
			out[i] = a.sums[i] / m
		}
	}
	return out
}

func resize(s []float32, n int) []float32 {
	if cap(s) < n {
		return make([]float32, n)
	}
	return s[:n]
}
