package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"alumnihub/internal/auth"
	"alumnihub/internal/config"
	"alumnihub/internal/entity"
	"alumnihub/internal/model"
)

// fakeAccountRepo implements the account methods exercised by the auth
// handlers. Anything else panics via the embedded nil interface.
type fakeAccountRepo struct {
	model.Repository

	accounts map[string]*entity.DbAccount
	nextID   uint
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.DbAccount), nextID: 1}
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, account *entity.DbAccount) error {
	key := strings.ToLower(account.Email)
	if _, ok := f.accounts[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	account.ID = f.nextID
	f.nextID++
	f.accounts[key] = account
	return nil
}

func (f *fakeAccountRepo) GetAccountByEmail(_ context.Context, email string) (*entity.DbAccount, error) {
	if account, ok := f.accounts[strings.ToLower(email)]; ok {
		return account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetAccountByID(_ context.Context, id uint) (*entity.DbAccount, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) CountAccounts(_ context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

func newTestHandler(t *testing.T, repo model.Repository) *HTTPHandler {
	t.Helper()
	cfg := config.Config{
		JWTSecret:            "test-secret",
		JWTIssuer:            "alumnihub-test",
		JWTExpirationMinutes: 60,
	}
	handler, err := NewHTTPHandler(cfg, repo, nil)
	require.NoError(t, err)
	return handler
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password, role, approval string, active bool) *entity.DbAccount {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	account := &entity.DbAccount{
		Email:          email,
		PasswordHash:   hash,
		FirstName:      "Test",
		LastName:       "Account",
		Role:           role,
		ApprovalStatus: approval,
		IsActive:       active,
	}
	require.NoError(t, repo.CreateAccount(context.Background(), account))
	return account
}

func TestRegisterCreatesPendingMember(t *testing.T) {
	repo := newFakeAccountRepo()
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Register, http.MethodPost, "/api/auth/register", gin.H{
		"email":      "New@Alumni.ORG",
		"password":   "longenough1",
		"first_name": "Jordan",
		"last_name":  "Lee",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created, err := repo.GetAccountByEmail(context.Background(), "new@alumni.org")
	require.NoError(t, err)
	assert.Equal(t, "new@alumni.org", created.Email)
	assert.Equal(t, entity.AccountRoleMember, created.Role)
	assert.Equal(t, entity.ApprovalStatusPending, created.ApprovalStatus)
	assert.False(t, created.EmailVerified)
	assert.True(t, created.IsActive)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "taken@alumni.org", "longenough1", entity.AccountRoleMember, entity.ApprovalStatusPending, true)
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Register, http.MethodPost, "/api/auth/register", gin.H{
		"email":      "taken@alumni.org",
		"password":   "longenough1",
		"first_name": "Jordan",
		"last_name":  "Lee",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSucceedsForApprovedAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ok@alumni.org", "longenough1", entity.AccountRoleMember, entity.ApprovalStatusApproved, true)
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Login, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ok@alumni.org",
		"password": "longenough1",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp entity.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ok@alumni.org", resp.Account.Email)
}

func TestLoginRejectsPendingAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "pending@alumni.org", "longenough1", entity.AccountRoleMember, entity.ApprovalStatusPending, true)
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Login, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "pending@alumni.org",
		"password": "longenough1",
	})

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeAccountPending, resp.Code)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "off@alumni.org", "longenough1", entity.AccountRoleMember, entity.ApprovalStatusApproved, false)
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Login, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "off@alumni.org",
		"password": "longenough1",
	})

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeAccountDisabled, resp.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ok@alumni.org", "longenough1", entity.AccountRoleMember, entity.ApprovalStatusApproved, true)
	handler := newTestHandler(t, repo)

	w := performJSON(t, handler.Login, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ok@alumni.org",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
