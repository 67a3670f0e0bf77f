package pricing

// Total returns the sum of all prices.
// An empty or nil list totals 0. Overflow wraps at the native int width.
func Total(prices []int) int {
	total := 0
	for _, p := range prices {
		total += p
	}
	return total
}
