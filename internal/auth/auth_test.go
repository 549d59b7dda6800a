package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	loc := "YGN_MAIN"
	user := &models.User{ID: 9, Name: "Daw Hla", Email: "hla@example.com", Role: models.RoleStaff, LocationCode: &loc}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, models.RoleStaff, claims.Role)
	require.NotNil(t, claims.LocationCode)
	assert.Equal(t, "YGN_MAIN", *claims.LocationCode)

	_, err = ParseToken("another-secret-another-secret-xx", token)
	assert.Error(t, err)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	claims := &JWTCustomClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.OpenDB(t)
	testutil.UseGlobalDB(t, db)

	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Post("/api/auth/register-admin", RegisterAdminHandler())
	app.Post("/api/auth/login", LoginHandler(cfg))
	app.Get("/api/auth/me", JWTMiddleware(cfg.JWTSecret), MeHandler())
	app.Post("/api/admin/users", JWTMiddleware(cfg.JWTSecret), RequireRole(models.RoleAdmin), CreateStaffHandler())
	app.Get("/api/admin-only", JWTMiddleware(cfg.JWTSecret), RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		id, name := Actor(c)
		return c.JSON(fiber.Map{"id": id, "name": name})
	})
	app.Get("/api/open", OptionalJWT(cfg.JWTSecret), func(c *fiber.Ctx) error {
		id, _ := Actor(c)
		return c.JSON(fiber.Map{"id": id})
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body, token string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestRegisterLoginAndRoles(t *testing.T) {
	app := newAuthApp(t)

	status, body := send(t, app, http.MethodPost, "/api/auth/register-admin",
		`{"name":"Admin","email":"Admin@Example.com ","password":"s3cretpass"}`, "")
	require.Equal(t, fiber.StatusCreated, status, body)

	status, _ = send(t, app, http.MethodPost, "/api/auth/register-admin",
		`{"name":"Second","email":"two@example.com","password":"s3cretpass"}`, "")
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = send(t, app, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = send(t, app, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"s3cretpass"}`, "")
	require.Equal(t, fiber.StatusOK, status, body)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.Token)

	status, body = send(t, app, http.MethodGet, "/api/auth/me", "", login.Token)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"email":"admin@example.com"`)

	status, body = send(t, app, http.MethodGet, "/api/admin-only", "", login.Token)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Admin"}`, body)

	status, _ = send(t, app, http.MethodGet, "/api/admin-only", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	staff := `{"name":"Ko Zaw","email":"zaw@example.com","password":"staffpass1"}`
	status, body = send(t, app, http.MethodPost, "/api/admin/users", staff, login.Token)
	require.Equal(t, fiber.StatusCreated, status, body)
	status, body = send(t, app, http.MethodPost, "/api/admin/users", staff, login.Token)
	assert.Equal(t, fiber.StatusConflict, status, body)

	staffToken, err := GenerateToken(testSecret, &models.User{ID: 2, Name: "Staff", Role: models.RoleStaff})
	require.NoError(t, err)
	status, _ = send(t, app, http.MethodGet, "/api/admin-only", "", staffToken)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestOptionalJWT(t *testing.T) {
	app := newAuthApp(t)

	status, body := send(t, app, http.MethodGet, "/api/open", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":0}`, body)

	token, err := GenerateToken(testSecret, &models.User{ID: 5, Name: "Staff", Role: models.RoleStaff})
	require.NoError(t, err)
	_, body = send(t, app, http.MethodGet, "/api/open", "", token)
	assert.JSONEq(t, `{"id":5}`, body)

	status, body = send(t, app, http.MethodGet, "/api/open", "", "garbage")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":0}`, body)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTCustomClaims{
		UserID: 5,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	status, body = send(t, app, http.MethodGet, "/api/open", "", expired)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":0}`, body)

	// zorunlu auth olan yerde aynı token reddedilir
	status, _ = send(t, app, http.MethodGet, "/api/admin-only", "", expired)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
