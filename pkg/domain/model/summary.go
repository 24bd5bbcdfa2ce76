package model

// Summary is the outcome of one migration run
type Summary struct {
	Total     int      `json:"total"`
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// HasFailure reports whether any repository failed to migrate
func (s *Summary) HasFailure() bool {
	return len(s.Failed) > 0
}
