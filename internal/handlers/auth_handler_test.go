package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.POST("/api/login", NewAuthHandler("letmein", "admin-token-1").Login)
	return g
}

func TestLogin(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{"correct password", `{"password":"letmein"}`, http.StatusOK, `{"ok":true,"token":"admin-token-1"}`},
		{"wrong password", `{"password":"nope"}`, http.StatusUnauthorized, `{"ok":false,"error":"Invalid password"}`},
		{"missing password", `{}`, http.StatusBadRequest, `{"ok":false,"error":"Password is required"}`},
		{"empty password", `{"password":""}`, http.StatusBadRequest, `{"ok":false,"error":"Password is required"}`},
		{"no body", "", http.StatusBadRequest, `{"ok":false,"error":"Password is required"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(loginRouter(), http.MethodPost, "/api/login", tc.body)
			require.Equal(t, tc.wantCode, w.Code)
			require.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestLogin_TokenIsStableAcrossLogins(t *testing.T) {
	g := loginRouter()
	first := do(g, http.MethodPost, "/api/login", `{"password":"letmein"}`).Body.String()
	second := do(g, http.MethodPost, "/api/login", `{"password":"letmein"}`).Body.String()
	require.Equal(t, first, second)
}

func TestLogin_UnsetPasswordRejectsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.POST("/api/login", NewAuthHandler("", "tok").Login)

	w := do(g, http.MethodPost, "/api/login", `{"password":"anything"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
