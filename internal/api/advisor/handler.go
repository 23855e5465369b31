package advisor

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"growing-backend/database"
	"growing-backend/internal/domain/finance"
	"growing-backend/internal/pkg/cache"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
)

// Wired in main; tests swap these the same way they swap database.DB.
var (
	AI    Client
	Store cache.Cache
)

// TipsCacheKey is the per-user key for cached financial tips. Expense
// writes delete it so tips are regenerated from fresh data instead of
// waiting out the TTL.
func TipsCacheKey(userID string) string {
	return "advisor:tips:" + userID
}

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// GetFinancialTips generates personalized saving tips from the user's
// recent expenses. Available to trial and premium users.
func GetFinancialTips(c *gin.Context) {
	userID := c.GetString("user_id")

	if Store != nil {
		if tips, ok := Store.Get(c.Request.Context(), TipsCacheKey(userID)); ok {
			c.JSON(http.StatusOK, gin.H{"tips": tips, "cached": true})
			return
		}
	}

	if AI == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Advisor not configured"})
		return
	}

	var expenses []finance.Expense
	if err := database.DB.Where("user_id = ?", userID).
		Order("spent_at DESC").Limit(10).Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load expenses"})
		return
	}

	var sb strings.Builder
	sb.WriteString("Give three short money-saving tips for someone with these recent expenses:\n")
	for _, e := range expenses {
		fmt.Fprintf(&sb, "- %s: %.2f (%s)\n", e.Label, e.Amount, e.Category)
	}
	if len(expenses) == 0 {
		sb.WriteString("(no expenses recorded yet)\n")
	}

	tips, err := AI.Ask(c.Request.Context(), sb.String())
	if err != nil {
		utils.LogErrorWithUser(userID, err, "AI tips request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Advisor temporarily unavailable, please retry"})
		return
	}

	if Store != nil {
		_ = Store.Set(c.Request.Context(), TipsCacheKey(userID), tips, 12*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// AnalyzeStock returns an AI analysis of a ticker symbol. Premium only.
func AnalyzeStock(c *gin.Context) {
	var body struct {
		Symbol string `json:"symbol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid symbol"})
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(body.Symbol))
	if !symbolPattern.MatchString(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticker symbol"})
		return
	}

	key := "advisor:stock:" + symbol
	if Store != nil {
		if analysis, ok := Store.Get(c.Request.Context(), key); ok {
			c.JSON(http.StatusOK, gin.H{"symbol": symbol, "analysis": analysis, "cached": true})
			return
		}
	}

	if AI == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Advisor not configured"})
		return
	}

	prompt := fmt.Sprintf("Give a brief, balanced analysis of the stock %s: recent outlook, main risks, and what kind of investor it suits.", symbol)
	analysis, err := AI.Ask(c.Request.Context(), prompt)
	if err != nil {
		utils.LogError(err, "AI stock analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Advisor temporarily unavailable, please retry"})
		return
	}

	if Store != nil {
		_ = Store.Set(c.Request.Context(), key, analysis, time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "analysis": analysis})
}

// AnalyzeInvestment evaluates a described investment opportunity. Premium
// only.
func AnalyzeInvestment(c *gin.Context) {
	var body struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid description"})
		return
	}

	if AI == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Advisor not configured"})
		return
	}

	prompt := fmt.Sprintf("Evaluate this investment opportunity and list its main risks: %s", body.Description)
	if body.Amount > 0 {
		prompt = fmt.Sprintf("%s (intended amount: %.2f)", prompt, body.Amount)
	}

	analysis, err := AI.Ask(c.Request.Context(), prompt)
	if err != nil {
		utils.LogError(err, "AI investment analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Advisor temporarily unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
