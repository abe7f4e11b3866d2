package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookreviews/internal/errors"
	"bookreviews/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "successful registration",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@b.com", "secret1").
					Return(&model.User{ID: 1, Email: "a@b.com"}, "tok", nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"token":"tok"}`,
		},
		{
			name: "email already exists",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@b.com", "secret1").
					Return(nil, "", errors.ErrEmailExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email already exists"}`,
		},
		{
			name: "short password",
			body: `{"email":"a@b.com","password":"abc"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@b.com", "abc").
					Return(nil, "", errors.ErrShortPassword)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Password must be at least 6 characters"}`,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email and password are required"}`,
		},
		{
			name: "store failure",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "a@b.com", "secret1").
					Return(nil, "", fmt.Errorf("create user: database is down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server error: create user: database is down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			e := echo.New()
			c, rec := newJSONContext(e, http.MethodPost, "/api/register", tt.body)

			h := NewAuthHandler(mockSvc)
			assert.NoError(t, h.Register(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "successful login",
			body: `{"email":"a@b.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@b.com", "secret1").
					Return(&model.User{ID: 1, Email: "a@b.com"}, "tok", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"token":"tok"}`,
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@b.com","password":"wrong1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@b.com", "wrong1").
					Return(nil, "", errors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:       "malformed body",
			body:       `not json`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email and password are required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			e := echo.New()
			c, rec := newJSONContext(e, http.MethodPost, "/api/login", tt.body)

			h := NewAuthHandler(mockSvc)
			assert.NoError(t, h.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			mockSvc.AssertExpectations(t)
		})
	}
}
