package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctorsportal/models"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*user.AuthResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AuthResponse), args.Error(1)
}
func (m *mockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserService) MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpsertResult), args.Error(1)
}
func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}
func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.GET("/admin/:email", h.IsAdmin)
	r.PUT("/user/admin/:email", h.MakeAdmin)
	r.PUT("/user/:email", h.UpsertUser)
	return r
}

func TestUpsertUser(t *testing.T) {
	svc := &mockUserService{}
	svc.On("UpsertUser", mock.Anything, "jane@example.com", models.UserUpsertRequest{Name: "Jane Doe"}).
		Return(&user.AuthResponse{Result: &models.UpsertResult{UpsertedCount: 1}, Token: "tok"}, nil)
	r := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/user/jane@example.com", strings.NewReader(`{"name":"Jane Doe","role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
	svc.AssertExpectations(t)
}

func TestUpsertUser_InvalidEmail(t *testing.T) {
	svc := &mockUserService{}
	r := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/user/not-an-email", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpsertUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestIsAdmin(t *testing.T) {
	svc := &mockUserService{}
	svc.On("IsAdmin", mock.Anything, "admin@example.com").Return(true, nil)
	svc.On("IsAdmin", mock.Anything, "jane@example.com").Return(false, nil)
	r := newUserRouter(svc)

	for email, want := range map[string]string{
		"admin@example.com": `{"admin":true}`,
		"jane@example.com":  `{"admin":false}`,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/"+email, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, want, w.Body.String())
	}
}

func TestMakeAdmin(t *testing.T) {
	svc := &mockUserService{}
	svc.On("MakeAdmin", mock.Anything, "jane@example.com").Return(&models.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	r := newUserRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/user/admin/jane@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"modifiedCount":1`)
}

func TestUpsertUser_ChunkedBody(t *testing.T) {
	svc := &mockUserService{}
	svc.On("UpsertUser", mock.Anything, "jane@example.com", models.UserUpsertRequest{Name: "Jane Doe"}).
		Return(&user.AuthResponse{Token: "tok"}, nil)
	r := newUserRouter(svc)

	// A reader of unknown length is sent without Content-Length.
	body := io.MultiReader(strings.NewReader(`{"name":"Jane Doe"}`))
	req := httptest.NewRequest(http.MethodPut, "/user/jane@example.com", body)
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, int64(-1), req.ContentLength)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpsertUser_EmptyBody(t *testing.T) {
	svc := &mockUserService{}
	svc.On("UpsertUser", mock.Anything, "jane@example.com", models.UserUpsertRequest{}).
		Return(&user.AuthResponse{Token: "tok"}, nil)
	r := newUserRouter(svc)

	for _, body := range []io.Reader{nil, io.MultiReader(strings.NewReader(""))} {
		req := httptest.NewRequest(http.MethodPut, "/user/jane@example.com", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	svc.AssertNumberOfCalls(t, "UpsertUser", 2)
}
