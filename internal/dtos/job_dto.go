package dtos

// JobSearchQuery carries the raw filter values from the query string. Salary
// bounds stay strings here; the service validates and parses them so a bad
// bound becomes a 400 instead of being silently dropped.
type JobSearchQuery struct {
	Search    string `form:"search"`
	Type      string `form:"type"`
	SalaryMin string `form:"salaryMin"`
	SalaryMax string `form:"salaryMax"`
	Location  string `form:"location"`
}

type JobCreateRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Salary       *int64   `json:"salary" binding:"required,gte=0"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Requirements []string `json:"requirements"`
	ContactEmail string   `json:"contactEmail" binding:"required,email"`
}

// JobUpdateRequest is an explicit whitelist of mutable fields. Absent fields
// stay untouched; anything not listed here cannot be injected into the record.
type JobUpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Salary       *int64    `json:"salary" binding:"omitempty,gte=0"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Requirements *[]string `json:"requirements"`
	ContactEmail *string   `json:"contactEmail" binding:"omitempty,email"`
}
