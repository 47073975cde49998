package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListServices(ctx context.Context, namesOnly bool) ([]models.Service, error) {
	args := m.Called(ctx, namesOnly)
	return args.Get(0).([]models.Service), args.Error(1)
}

var (
	cleaningID, _ = primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	cavityID, _   = primitive.ObjectIDFromHex("507f1f77bcf86cd799439012")
)

func newServicesRouter(svc *mockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/services", NewServiceHandler(svc).ListServices)
	return r
}

func TestListServices_Full(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("ListServices", mock.Anything, false).
		Return([]models.Service{{ID: cleaningID, Name: "Cleaning", Slots: []string{}, Price: 20}}, nil)

	w := httptest.NewRecorder()
	newServicesRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"507f1f77bcf86cd799439011","name":"Cleaning","slots":[],"price":20}]`, w.Body.String())
}

func TestListServices_NamesOnly(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("ListServices", mock.Anything, true).
		Return([]models.Service{{ID: cleaningID, Name: "Cleaning"}, {ID: cavityID, Name: "Cavity Protection"}}, nil)

	w := httptest.NewRecorder()
	newServicesRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services?fields=name", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"507f1f77bcf86cd799439011","name":"Cleaning"},{"_id":"507f1f77bcf86cd799439012","name":"Cavity Protection"}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "slots")
}
