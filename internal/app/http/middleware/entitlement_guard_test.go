package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"growing-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	m.Run()
}

const guardUserID = "0e6b0063-9b7c-4b44-a6b1-c8b1f0f9a001"

func performGuarded(guard gin.HandlerFunc, userID string) *httptest.ResponseRecorder {
	r := testutils.SetupTestRouter()
	r.GET("/guarded", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}, guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectEntitlementLookup(mock sqlmock.Sqlmock, planType string, trialStart time.Time) {
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "entitlements"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "plan_type", "trial_start", "subscription_id",
			"subscription_status", "subscription_expires_at", "created_at", "updated_at",
		}).AddRow(guardUserID, planType, trialStart, nil, "none", nil, now, now))
}

func TestRequireEntitlement_NoIdentity(t *testing.T) {
	w := performGuarded(RequireEntitlement(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireEntitlement_ActiveTrialAdmitted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectEntitlementLookup(mock, "free_trial", time.Now().AddDate(0, 0, -5))

	w := performGuarded(RequireEntitlement(), guardUserID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireEntitlement_ExpiredTrialBlocked(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectEntitlementLookup(mock, "free_trial", time.Now().AddDate(0, 0, -45))

	w := performGuarded(RequireEntitlement(), guardUserID)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"trial_expired":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireEntitlement_PremiumAdmitted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectEntitlementLookup(mock, "premium", time.Now().AddDate(0, 0, -400))

	w := performGuarded(RequireEntitlement(), guardUserID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePremium_TrialUserBlocked(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectEntitlementLookup(mock, "free_trial", time.Now().AddDate(0, 0, -5))

	w := performGuarded(RequirePremium(), guardUserID)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"trial_expired":false`)
}

func TestRequirePremium_PremiumAdmitted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectEntitlementLookup(mock, "premium", time.Now().AddDate(0, 0, -400))

	w := performGuarded(RequirePremium(), guardUserID)
	assert.Equal(t, http.StatusOK, w.Code)
}
