package mapper

import (
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/dto"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:         project.ID,
		Name:       project.Name,
		Deadline:   project.Deadline.Format(dateLayout),
		Status:     project.Status,
		ClientID:   project.ClientID,
		ClientName: project.ClientName,
		Tasks:      ToTaskItems(project.Tasks),
	}

	if project.ImageURL != nil {
		value := *project.ImageURL
		item.ImageURL = &value
	}

	return item
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.TaskItem{
			ID:           task.ID,
			Title:        task.Title,
			AssignedUser: task.AssignedUser,
			DueDate:      task.DueDate.Format(dateLayout),
			IsCompleted:  task.IsCompleted,
		})
	}
	return items
}
