package controllers

import (
	"net/http"

	"flexfit-backend/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Svc *services.PlanService
}

func NewPlanController(svc *services.PlanService) *PlanController {
	return &PlanController{Svc: svc}
}

func (h *PlanController) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": h.Svc.Goals()})
}

// GET /plans/:goal
func (h *PlanController) GetPlan(c *gin.Context) {
	plan, err := h.Svc.PlanForGoal(c.Param("goal"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
