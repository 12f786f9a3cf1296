package shared

// CeilDiv returns ceil(x / y) for x >= 0 and y > 0.
func CeilDiv(x, y int) int {
	if x <= 0 {
		return 0
	}
	return (x-1)/y + 1
}
