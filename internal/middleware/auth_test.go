package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"replink_backend/internal/auth"
	"replink_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakePrincipals struct {
	companies map[string]*models.Company
	reps      map[string]*models.Rep
	admins    map[string]*models.Admin
}

func (f *fakePrincipals) company(_ context.Context, id string) (*models.Company, error) {
	if c, ok := f.companies[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakePrincipals) rep(_ context.Context, id string) (*models.Rep, error) {
	if r, ok := f.reps[id]; ok {
		return r, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakePrincipals) admin(_ context.Context, id string) (*models.Admin, error) {
	if a, ok := f.admins[id]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

type companyFn func(context.Context, string) (*models.Company, error)

func (f companyFn) GetByID(ctx context.Context, id string) (*models.Company, error) { return f(ctx, id) }

type repFn func(context.Context, string) (*models.Rep, error)

func (f repFn) GetByID(ctx context.Context, id string) (*models.Rep, error) { return f(ctx, id) }

type adminFn func(context.Context, string) (*models.Admin, error)

func (f adminFn) GetByID(ctx context.Context, id string) (*models.Admin, error) { return f(ctx, id) }

func newTestRouter(t *testing.T, principals *fakePrincipals) (*gin.Engine, *AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewAuthMiddleware(
		companyFn(principals.company),
		repFn(principals.rep),
		adminFn(principals.admin),
		testSecret,
	)
	return gin.New(), mw
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRepAuth(t *testing.T) {
	rep := &models.Rep{Name: "Alice"}
	rep.ID = "rep-1"

	principals := &fakePrincipals{reps: map[string]*models.Rep{"rep-1": rep}}
	r, mw := newTestRouter(t, principals)

	var gotUserID string
	r.GET("/protected", mw.RepAuth(), func(c *gin.Context) {
		gotUserID = c.GetString(CtxUserID)
		c.Status(http.StatusOK)
	})

	token, err := auth.GenerateToken("rep-1", testSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, token).Code)
	assert.Equal(t, "rep-1", gotUserID)

	// Missing and malformed tokens.
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "garbage").Code)

	// Valid token for a deleted rep.
	orphan, err := auth.GenerateToken("rep-gone", testSecret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, orphan).Code)
}

func TestRepAuthFraudGate(t *testing.T) {
	rep := &models.Rep{Name: "Alice", IsFraud: true}
	rep.ID = "rep-1"

	principals := &fakePrincipals{reps: map[string]*models.Rep{"rep-1": rep}}
	r, mw := newTestRouter(t, principals)
	r.GET("/protected", mw.RepAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := auth.GenerateToken("rep-1", testSecret)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ACCOUNT_FRAUD")
}

func TestCompanyAuthRejectsRepToken(t *testing.T) {
	rep := &models.Rep{Name: "Alice"}
	rep.ID = "rep-1"

	principals := &fakePrincipals{reps: map[string]*models.Rep{"rep-1": rep}}
	r, mw := newTestRouter(t, principals)
	r.GET("/protected", mw.CompanyAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := auth.GenerateToken("rep-1", testSecret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, token).Code)
}

func TestAnyAuthResolvesEachPrincipal(t *testing.T) {
	rep := &models.Rep{Name: "Alice"}
	rep.ID = "rep-1"
	company := &models.Company{Name: "Acme"}
	company.ID = "company-1"
	admin := &models.Admin{Name: "Root"}
	admin.ID = "admin-1"

	principals := &fakePrincipals{
		reps:      map[string]*models.Rep{"rep-1": rep},
		companies: map[string]*models.Company{"company-1": company},
		admins:    map[string]*models.Admin{"admin-1": admin},
	}
	r, mw := newTestRouter(t, principals)
	r.GET("/protected", mw.AnyAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"rep-1", "company-1", "admin-1"} {
		token, err := auth.GenerateToken(id, testSecret)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doRequest(r, token).Code, "principal %s", id)
	}

	stranger, err := auth.GenerateToken("nobody", testSecret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, stranger).Code)
}
