package validation

import (
	"errors"

	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/dto"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
)

var ErrInvalidFilter = errors.New("invalid filter parameters")

// BuildProjectFilter turns the bound query parameters into a domain filter,
// parsing the optional date bounds.
func BuildProjectFilter(req dto.FilterProjectsRequest) (domain.ProjectFilter, error) {
	filter := domain.ProjectFilter{
		ClientID:    req.ClientID,
		Status:      req.Status,
		SearchTerm:  req.SearchTerm,
		CurrentPage: req.CurrentPage,
		PageSize:    req.PageSize,
	}

	if req.From != nil && *req.From != "" {
		from, err := ParseDate(*req.From)
		if err != nil {
			return domain.ProjectFilter{}, ErrInvalidFilter
		}
		filter.From = &from
	}

	if req.To != nil && *req.To != "" {
		to, err := ParseDate(*req.To)
		if err != nil {
			return domain.ProjectFilter{}, ErrInvalidFilter
		}
		filter.To = &to
	}

	return filter, nil
}
