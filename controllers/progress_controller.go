package controllers

import (
	"net/http"
	"time"

	"flexfit-backend/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Svc *services.ProgressService
}

func NewProgressController(svc *services.ProgressService) *ProgressController {
	return &ProgressController{Svc: svc}
}

// GET /progress/:period?date=2006-01-02
func (h *ProgressController) GetSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ref := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, ref.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		ref = parsed
	}

	out, err := h.Svc.Summary(userID, c.Param("period"), ref)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
