package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecosystuz/tezkor-backend/internal/server/http/dto"
)

// MasterHandler manages master registry endpoints.
type MasterHandler struct {
	facade MasterFacade
}

// NewMasterHandler constructs MasterHandler.
func NewMasterHandler(facade MasterFacade) *MasterHandler {
	return &MasterHandler{facade: facade}
}

// Create handles POST /api/masters/create.
func (h *MasterHandler) Create(c *gin.Context) {
	var req dto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	master, err := h.facade.RegisterMaster(c.Request.Context(), req.Name, req.Phone, req.ServiceType, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "master created", "master": toMasterResponse(master)})
}

// List handles GET /api/masters/all.
func (h *MasterHandler) List(c *gin.Context) {
	masters, err := h.facade.Masters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"masters": toMasterResponses(masters)})
}

// ListAvailable handles GET /api/masters/available/:serviceType.
func (h *MasterHandler) ListAvailable(c *gin.Context) {
	masters, err := h.facade.AvailableMasters(c.Request.Context(), c.Param("serviceType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"masters": toMasterResponses(masters)})
}
