package dto

type TaskItem struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	AssignedUser string `json:"assignedUser"`
	DueDate      string `json:"dueDate"`
	IsCompleted  bool   `json:"isCompleted"`
}

type ProjectItem struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	Deadline   string     `json:"deadline"`
	Status     bool       `json:"status"`
	ImageURL   *string    `json:"imageUrl,omitempty"`
	ClientID   uint64     `json:"clientId"`
	ClientName string     `json:"clientName"`
	Tasks      []TaskItem `json:"tasks"`
}

type FilterProjectsRequest struct {
	ClientID    *uint64 `form:"clientId"`
	From        *string `form:"from"`
	To          *string `form:"to"`
	Status      *bool   `form:"status"`
	SearchTerm  string  `form:"searchTerm"`
	CurrentPage int     `form:"currentPage" binding:"required,gt=0"`
	PageSize    int     `form:"pageSize" binding:"required,gt=0"`
}

type FilterProjectsResponse struct {
	TotalFoundRecords int           `json:"totalFoundRecords"`
	Projects          []ProjectItem `json:"projects"`
}

type CreatedResponse struct {
	ID uint64 `json:"id"`
}
