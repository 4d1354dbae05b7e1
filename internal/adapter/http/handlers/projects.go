package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/dto"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/mapper"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/middleware"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/validation"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/storage"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
	"github.com/Sp4ce14/ProjectManagerApp/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
	imageStore     ports.ImageStore
	publicBaseURL  string
}

func NewProjectHandler(projectService ports.ProjectService, imageStore ports.ImageStore, publicBaseURL string) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		imageStore:     imageStore,
		publicBaseURL:  publicBaseURL,
	}
}

func (h *ProjectHandler) Filter(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.FilterProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilter, lang),
		)
		return
	}

	filter, err := validation.BuildProjectFilter(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilter, lang),
		)
		return
	}

	page, err := h.projectService.FilterProjects(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to filter projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFilterProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.FilterProjectsResponse{
		TotalFoundRecords: page.TotalFoundRecords,
		Projects:          mapper.ToProjectItems(page.Projects),
	})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, ok := parseProjectID(c, lang)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get project", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	payload, err := validation.ParseProjectForm(form)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, projectPayloadMsgKey(err), lang),
		)
		return
	}

	image := formImage(form)
	if image == nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgNoFileUploaded, lang),
		)
		return
	}

	imageURL, ok := h.saveImage(c, image, lang, apierrors.MsgFailCreateProject)
	if !ok {
		return
	}

	projectID, err := h.projectService.CreateProject(c.Request.Context(), domain.CreateProjectInput{
		Name:     payload.Name,
		Deadline: payload.Deadline,
		Status:   payload.Status,
		ImageURL: imageURL,
		ClientID: payload.ClientID,
		Tasks:    payload.Tasks,
	})
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgClientNotFound, lang),
			)
			return
		}

		// The stored file is left behind on purpose; log it so orphans can be reaped.
		zap.L().Error("failed to create project", zap.String("image_url", imageURL), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: projectID})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, ok := parseProjectID(c, lang)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	payload, err := validation.ParseProjectForm(form)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, projectPayloadMsgKey(err), lang),
		)
		return
	}

	existing, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load project for update", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProject, lang),
		)
		return
	}

	input := domain.UpdateProjectInput{
		Name:     payload.Name,
		Deadline: payload.Deadline,
		Status:   payload.Status,
		ClientID: payload.ClientID,
		Tasks:    payload.Tasks,
	}

	if image := formImage(form); image != nil {
		// Validate the replacement before touching the stored file.
		if err := storage.Validate(image.Filename, image.Size); err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, imageMsgKey(err), lang),
			)
			return
		}

		if existing.ImageURL != nil {
			if err := h.imageStore.Remove(*existing.ImageURL); err != nil {
				zap.L().Warn("failed to remove previous image", zap.String("image_url", *existing.ImageURL), zap.Error(err))
			}
		}

		imageURL, ok := h.saveImage(c, image, lang, apierrors.MsgFailUpdateProject)
		if !ok {
			return
		}
		input.ImageURL = &imageURL
	}

	if err := h.projectService.UpdateProject(c.Request.Context(), projectID, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		case errors.Is(err, domain.ErrClientNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgClientNotFound, lang),
			)
		default:
			zap.L().Error("failed to update project", zap.Uint64("project_id", projectID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProject, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, ok := parseProjectID(c, lang)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete project", zap.Uint64("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProject, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// saveImage opens the upload and writes it through the image store, turning
// validation failures into 400s and I/O failures into a 500 with failMsgKey.
func (h *ProjectHandler) saveImage(c *gin.Context, image *multipart.FileHeader, lang, failMsgKey string) (string, bool) {
	file, err := image.Open()
	if err != nil {
		zap.L().Error("failed to open uploaded image", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
		)
		return "", false
	}
	defer func() {
		_ = file.Close()
	}()

	imageURL, err := h.imageStore.Save(image.Filename, image.Size, file, h.baseURL(c))
	if err != nil {
		if msgKey := imageMsgKey(err); msgKey != "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
			)
			return "", false
		}

		zap.L().Error("failed to store uploaded image", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
		)
		return "", false
	}

	return imageURL, true
}

// baseURL prefers the configured public base URL and falls back to the
// current request's scheme and host.
func (h *ProjectHandler) baseURL(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func formImage(form *multipart.Form) *multipart.FileHeader {
	files := form.File["image"]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func parseProjectID(c *gin.Context, lang string) (uint64, bool) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || projectID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectID, lang),
		)
		return 0, false
	}
	return projectID, true
}

func projectPayloadMsgKey(err error) string {
	if errors.Is(err, validation.ErrClientIDRequired) {
		return apierrors.MsgClientIDRequired
	}
	return apierrors.MsgInvalidProjectPayload
}

func imageMsgKey(err error) string {
	switch {
	case errors.Is(err, storage.ErrNoFile):
		return apierrors.MsgNoFileUploaded
	case errors.Is(err, storage.ErrFileType):
		return apierrors.MsgInvalidFileType
	case errors.Is(err, storage.ErrFileTooLarge):
		return apierrors.MsgFileTooLarge
	}
	return ""
}
