package diary

// SaveDiaryDTO is the create/update request body.
type SaveDiaryDTO struct {
	Content []string `json:"content" binding:"required"`
}

// ListQuery carries the optional date filter. Month/day default in the
// datefilter precedence rules, not here.
type ListQuery struct {
	Year  *int `form:"year"`
	Month *int `form:"month"`
	Day   *int `form:"day"`
}
