// Package primes classifies integers by trial division.
package primes

// IsPrime reports whether n is prime.
//
// After ruling out multiples of 2 and 3, only candidates of the form
// 6k-1 and 6k+1 are tried as divisors, up to the square root of n.
// Pure and safe for concurrent use.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without overflow near math.MaxInt
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Count returns how many values in s are prime.
func Count(s []int) int {
	c := 0
	for _, v := range s {
		if IsPrime(v) {
			c++
		}
	}
	return c
}
