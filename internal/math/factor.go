package math

// MaxSmoothFactor is the largest prime factor the mixed-radix kernel
// handles directly. Lengths with a larger prime factor go through the
// Bluestein fallback.
const MaxSmoothFactor = 13

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. Factorize(1) returns an empty slice; n < 1 returns nil.
func Factorize(n int) []int {
	if n < 1 {
		return nil
	}

	factors := make([]int, 0, 8)

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for f := 3; f*f <= n; f += 2 {
		for n%f == 0 {
			factors = append(factors, f)
			n /= f
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// IsSmooth reports whether every prime factor of n is <= limit.
func IsSmooth(n, limit int) bool {
	if n < 1 {
		return false
	}

	for _, f := range Factorize(n) {
		if f > limit {
			return false
		}
	}

	return true
}

// StageRadices converts the prime factorization of n into the stage
// radices the mixed-radix kernel walks. When groupRadix4 is set, pairs
// of 2s are fused into radix-4 stages, which halves the number of
// passes over the data for power-of-two-rich sizes.
func StageRadices(n int, groupRadix4 bool) []int {
	primes := Factorize(n)
	if len(primes) == 0 {
		return primes
	}

	twos := 0
	rest := make([]int, 0, len(primes))

	for _, f := range primes {
		if f == 2 {
			twos++
		} else {
			rest = append(rest, f)
		}
	}

	stages := make([]int, 0, len(primes))

	if groupRadix4 {
		for ; twos >= 2; twos -= 2 {
			stages = append(stages, 4)
		}
	}

	for ; twos > 0; twos-- {
		stages = append(stages, 2)
	}

	return append(stages, rest...)
}
