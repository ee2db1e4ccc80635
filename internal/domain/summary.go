package domain

// Summary holds aggregate status counts across all consultants. It is
// recomputed by the backend on demand; the client never derives it locally.
type Summary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Complete   int `json:"complete"`
}

// MaxStatusCount returns the largest of the three per-status counts, never
// less than 1, so chart scaling cannot divide by zero.
func (s Summary) MaxStatusCount() int {
	m := 1
	for _, v := range []int{s.Pending, s.InProgress, s.Complete} {
		if v > m {
			m = v
		}
	}
	return m
}
