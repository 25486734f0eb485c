package chanselect

import "github.com/valyala/fastrand"

// permutation returns a uniformly random permutation of [0, n), used by
// the select engine to pick a fresh probe order for every invocation so
// that no op is systematically favored by always being checked first.
// Uses fastrand rather than math/rand/v2: a non-cryptographic,
// lock-free generator is plenty for picking a probe order, and avoids
// math/rand/v2's global-lock contention under heavy select traffic.
func permutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(fastrand.Uint32n(uint32(i + 1)))
		p[i], p[j] = p[j], p[i]
	}
	return p
}
