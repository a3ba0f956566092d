package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brandhub/internal/identity"
	"brandhub/internal/models"
	"brandhub/internal/repo"
	"brandhub/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Brand{}, &models.Product{}))

	store := &repo.GormRepo{DB: db}
	resolver := &identity.Resolver{Repo: store, JWTSecret: testSecret}

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler()

	Register(e, &Deps{
		Resolver: resolver,
		Auth: &AuthHTTP{Svc: &service.AuthService{
			Repo:           store,
			JWTSecret:      testSecret,
			AccessTokenTTL: 20 * time.Minute,
		}},
		Users:    &UserHTTP{Svc: &service.UserService{Repo: store}},
		Brands:   &BrandHTTP{Svc: &service.BrandService{Repo: store}},
		Products: &ProductHTTP{Svc: &service.ProductService{Repo: store}},
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(method, path string, form url.Values) *httptest.ResponseRecorder {
	env.T.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) register(email, password, name string) {
	env.T.Helper()

	rec := env.doJSON(http.MethodPost, "/api/users", "", map[string]any{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(env.T, http.StatusCreated, rec.Code, rec.Body.String())
}

func (env *testEnv) login(email, password string) string {
	env.T.Helper()

	rec := env.doForm(http.MethodPost, "/api/auth/access-token", url.Values{
		"username": {email},
		"password": {password},
	})
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(env.T, "bearer", resp.TokenType)
	require.NotEmpty(env.T, resp.AccessToken)
	return resp.AccessToken
}

func decodeBrand(t *testing.T, rec *httptest.ResponseRecorder) models.Brand {
	t.Helper()

	var brand models.Brand
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brand))
	return brand
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}
