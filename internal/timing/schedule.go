package timing

import "math/rand/v2"

// scheduleStream is mixed into the second PCG word so that a seed of zero
// still produces a well-spread stream.
const scheduleStream uint64 = 0x9e3779b97f4a7c15

// BuildSchedule returns the call order for n candidates over the given number
// of rounds. The result holds rounds consecutive blocks of length n; each
// block is a permutation of 0..n-1 shuffled by one generator seeded once with
// seed and advanced across blocks. The same arguments always yield the same
// schedule.
func BuildSchedule(n, rounds int, seed uint64) []int {
	if n <= 0 || rounds <= 0 {
		return []int{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^scheduleStream))
	order := make([]int, 0, n*rounds)
	for range rounds {
		start := len(order)
		for f := range n {
			order = append(order, f)
		}
		block := order[start:]
		rng.Shuffle(len(block), func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})
	}
	return order
}
