package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/dto"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/mapper"
	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/http/middleware"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/domain"
	"github.com/Sp4ce14/ProjectManagerApp/internal/core/ports"
	"github.com/Sp4ce14/ProjectManagerApp/pkg/apierrors"
)

type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list clients", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListClients, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToClientItems(clients))
}

func (h *ClientHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidClientPayload, lang),
		)
		return
	}

	clientID, err := h.clientService.CreateClient(c.Request.Context(), domain.CreateClientInput{
		Name:  name,
		Email: email,
	})
	if err != nil {
		zap.L().Error("failed to create client", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateClient, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: clientID})
}
