package validation

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

var (
	ErrInvalidProjectPayload = errors.New("invalid project payload")
	ErrClientIDRequired      = errors.New("client id required")
)

// ProjectPayload is the validated form of the multipart project body, shared
// by create and update.
type ProjectPayload struct {
	Name     string
	Deadline time.Time
	Status   bool
	ClientID uint64
	Tasks    []domain.TaskInput
}

// ParseProjectForm binds the multipart fields (name, deadline, status,
// clientId, tasks[i].*) into a typed payload before any business logic runs.
func ParseProjectForm(form *multipart.Form) (ProjectPayload, error) {
	name := strings.TrimSpace(formValue(form, "name"))
	if name == "" {
		return ProjectPayload{}, ErrInvalidProjectPayload
	}

	clientIDValue := strings.TrimSpace(formValue(form, "clientId"))
	if clientIDValue == "" {
		return ProjectPayload{}, ErrClientIDRequired
	}
	clientID, err := strconv.ParseUint(clientIDValue, 10, 64)
	if err != nil || clientID == 0 {
		return ProjectPayload{}, ErrClientIDRequired
	}

	deadline, err := ParseDate(formValue(form, "deadline"))
	if err != nil {
		return ProjectPayload{}, ErrInvalidProjectPayload
	}

	status, err := strconv.ParseBool(formValue(form, "status"))
	if err != nil {
		return ProjectPayload{}, ErrInvalidProjectPayload
	}

	tasks, err := parseTaskFields(form)
	if err != nil {
		return ProjectPayload{}, err
	}

	return ProjectPayload{
		Name:     name,
		Deadline: deadline,
		Status:   status,
		ClientID: clientID,
		Tasks:    tasks,
	}, nil
}

func parseTaskFields(form *multipart.Form) ([]domain.TaskInput, error) {
	var tasks []domain.TaskInput
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("tasks[%d].", i)
		if !hasFormField(form, prefix+"title") &&
			!hasFormField(form, prefix+"assignedUser") &&
			!hasFormField(form, prefix+"dueDate") &&
			!hasFormField(form, prefix+"isCompleted") {
			break
		}

		title := strings.TrimSpace(formValue(form, prefix+"title"))
		assignedUser := strings.TrimSpace(formValue(form, prefix+"assignedUser"))
		if title == "" || assignedUser == "" {
			return nil, ErrInvalidProjectPayload
		}

		dueDate, err := ParseDate(formValue(form, prefix+"dueDate"))
		if err != nil {
			return nil, ErrInvalidProjectPayload
		}

		isCompleted, err := strconv.ParseBool(formValue(form, prefix+"isCompleted"))
		if err != nil {
			return nil, ErrInvalidProjectPayload
		}

		tasks = append(tasks, domain.TaskInput{
			Title:        title,
			AssignedUser: assignedUser,
			DueDate:      dueDate,
			IsCompleted:  isCompleted,
		})
	}
	return tasks, nil
}

// ParseDate accepts the date-only wire format, falling back to RFC 3339 for
// clients that serialize full timestamps.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

func formValue(form *multipart.Form, field string) string {
	values := form.Value[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func hasFormField(form *multipart.Form, field string) bool {
	_, ok := form.Value[field]
	return ok
}
