package service

// normalizePaging clamps page and size to sane values: page starts at 1,
// size defaults to 10 and is capped at 100.
func normalizePaging(currentPage, pageSize int) (int, int) {
	if currentPage < 1 {
		currentPage = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return currentPage, pageSize
}
