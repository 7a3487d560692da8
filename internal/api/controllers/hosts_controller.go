package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/aniket856/sanskriti/internal/services"
	"github.com/aniket856/sanskriti/pkg/utils"
)

type HostsController struct {
	hostsService services.HostsServiceInterface
}

func NewHostsController(hostsService services.HostsServiceInterface) *HostsController {
	return &HostsController{
		hostsService: hostsService,
	}
}

// ListCommunityHosts godoc
// @Summary List community hosts
// @Tags Community
// @Produce json
// @Success 200 {array} response_models.CommunityHost
// @Router /api/community/hosts [get]
func (h *HostsController) ListCommunityHosts(c *gin.Context) {
	hosts := h.hostsService.ListCommunityHosts(c.Request.Context())
	utils.RespondSuccess(c, hosts, "Community hosts fetched successfully")
}
