package finance

import (
	"net/http"
	"time"

	"growing-backend/database"
	"growing-backend/internal/api/advisor"
	"growing-backend/internal/domain/finance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateExpense(c *gin.Context) {
	var input struct {
		Label    string  `json:"label" binding:"required"`
		Amount   float64 `json:"amount" binding:"required,gt=0"`
		Category string  `json:"category"`
		SpentAt  *string `json:"spentAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spentAt := time.Now()
	if input.SpentAt != nil {
		parsed, err := time.Parse(time.RFC3339, *input.SpentAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spentAt must be RFC3339"})
			return
		}
		spentAt = parsed
	}

	expense := finance.Expense{
		UserID:   c.GetString("user_id"),
		Label:    input.Label,
		Amount:   input.Amount,
		Category: input.Category,
		SpentAt:  spentAt,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save expense"})
		return
	}

	// Cached tips are stale as soon as spending changes.
	if advisor.Store != nil {
		_ = advisor.Store.Delete(c.Request.Context(), advisor.TipsCacheKey(expense.UserID))
	}

	c.JSON(http.StatusCreated, expense)
}

func ListExpenses(c *gin.Context) {
	var expenses []finance.Expense
	err := database.DB.Where("user_id = ?", c.GetString("user_id")).
		Order("spent_at DESC").Find(&expenses).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func CreateGoal(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		TargetAmount float64 `json:"targetAmount" binding:"required,gt=0"`
		Deadline     *string `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := finance.Goal{
		UserID:       c.GetString("user_id"),
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
	}
	if input.Deadline != nil {
		parsed, err := time.Parse(time.RFC3339, *input.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be RFC3339"})
			return
		}
		goal.Deadline = &parsed
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save goal"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func ListGoals(c *gin.Context) {
	var goals []finance.Goal
	err := database.DB.Where("user_id = ?", c.GetString("user_id")).
		Order("created_at DESC").Find(&goals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func UpdateGoalProgress(c *gin.Context) {
	goalID := c.Param("id")
	if _, err := uuid.Parse(goalID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	var input struct {
		CurrentAmount float64 `json:"currentAmount" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal finance.Goal
	if err := database.DB.First(&goal, "id = ?", goalID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if goal.UserID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this goal"})
		return
	}

	if err := database.DB.Model(&goal).
		Update("current_amount", input.CurrentAmount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update goal"})
		return
	}
	c.JSON(http.StatusOK, goal)
}
