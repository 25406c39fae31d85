package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"SocialChat/global"
	jwtlib "SocialChat/tools/security"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	opts := &Options{
		HeaderToken:               "authorization",
		EnableAuthorizationBearer: true,
		CheckSession:              false,
	}
	r.GET("/guarded", Middleware(opts), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func freshToken(t *testing.T, userID string) string {
	t.Helper()
	token, _, _, err := jwtlib.Generate(jwtlib.DefaultOptions(global.GetJwtSecret()), userID, nil)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestMiddlewareAcceptsBearerScheme(t *testing.T) {
	r := newAuthRouter()
	token := freshToken(t, "u1")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s; want 200", w.Code, w.Body.String())
	}
}

func TestMiddlewareAcceptsRawToken(t *testing.T) {
	r := newAuthRouter()
	token := freshToken(t, "u1")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s; want 200", w.Code, w.Body.String())
	}
}

func TestMiddlewareInjectsUserID(t *testing.T) {
	r := newAuthRouter()
	token := freshToken(t, "user-42")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":"user-42"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	r := newAuthRouter()

	cases := []struct {
		name  string
		authz string
	}{
		{"no header", ""},
		{"bare scheme", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", func() string {
			tok, _, _, err := jwtlib.Generate(jwtlib.DefaultOptions([]byte("other-secret")), "u1", nil)
			if err != nil {
				t.Fatalf("generate token: %v", err)
			}
			return "Bearer " + tok
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d; want 401", w.Code)
			}
		})
	}
}
