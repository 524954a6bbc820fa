package mocks

// Random feeds Intn from a scripted queue. When the queue runs dry it
// returns zero, which keeps shuffles stable without panicking mid-test.
type Random struct {
	Queue []int
}

func NewRandom(values ...int) *Random {
	return &Random{Queue: values}
}

func (r *Random) Intn(n int) int {
	if len(r.Queue) == 0 {
		return 0
	}
	v := r.Queue[0]
	r.Queue = r.Queue[1:]
	if v >= n {
		v = n - 1
	}
	return v
}
