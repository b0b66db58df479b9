package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := AdminAuth(testSecret)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Token válido libera a requisição",
			authHeader: "Bearer " + signedToken(t, testSecret),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Cabeçalho ausente é não autorizado",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Cabeçalho sem prefixo Bearer é não autorizado",
			authHeader: signedToken(t, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token assinado com outro segredo é não autorizado",
			authHeader: "Bearer " + signedToken(t, "another-secret"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token malformado é não autorizado",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
