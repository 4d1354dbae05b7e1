package domain

import "time"

type Project struct {
	ID         uint64
	Name       string
	Deadline   time.Time
	Status     bool
	ImageURL   *string
	ClientID   uint64
	ClientName string
	Tasks      []Task
}

// ProjectFilter holds the conjunctive predicates for the filtered project
// listing. Nil fields mean "not filtered".
type ProjectFilter struct {
	ClientID    *uint64
	From        *time.Time
	To          *time.Time
	Status      *bool
	SearchTerm  string
	CurrentPage int
	PageSize    int
}

func (f ProjectFilter) Offset() int {
	return (f.CurrentPage - 1) * f.PageSize
}

// ProjectPage is one page of filtered projects plus the total match count
// before pagination, so callers can derive the page count.
type ProjectPage struct {
	TotalFoundRecords int
	Projects          []Project
}

type CreateProjectInput struct {
	Name     string
	Deadline time.Time
	Status   bool
	ImageURL string
	ClientID uint64
	Tasks    []TaskInput
}

type UpdateProjectInput struct {
	Name     string
	Deadline time.Time
	Status   bool
	// ImageURL is set only when a new image was uploaded; nil keeps the
	// stored URL untouched.
	ImageURL *string
	ClientID uint64
	Tasks    []TaskInput
}
