package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/astroya-scheduling/internal/api/handlers"
)

const (
	msgMissingToken = "Token de autenticação ausente."
	msgInvalidToken = "Token de autenticação inválido."
	msgNotAdmin     = "Usuário administrador não identificado."

	tokenLeeway = 5 * time.Second
)

type contextKey string

const adminEmailKey contextKey = "admin_email"

// ErrNoEmailClaim в токене нет claim email
var ErrNoEmailClaim = errors.New("middleware: token has no email claim")

// AdminClaims claims токена администратора
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminAuth проверяет Bearer JWT (HS256) и список email администраторов
type AdminAuth struct {
	secret []byte
	emails []string
	logger Logger
}

// NewAdminAuth создает middleware авторизации администратора
func NewAdminAuth(secret string, emails []string, logger Logger) *AdminAuth {
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			normalized = append(normalized, e)
		}
	}
	return &AdminAuth{
		secret: []byte(secret),
		emails: normalized,
		logger: logger,
	}
}

// Middleware кладет email администратора в контекст запроса
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		email, err := a.parse(parts[1])
		if err != nil {
			a.logger.Warn("AdminAuth: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		if !slices.Contains(a.emails, email) {
			a.logger.Warn("AdminAuth: email=%s is not an administrator", email)
			handlers.RespondForbidden(w, msgNotAdmin)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminEmailKey, email)))
	})
}

func (a *AdminAuth) parse(tokenStr string) (string, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(tokenLeeway),
	)
	if err != nil {
		return "", err
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return "", ErrNoEmailClaim
	}
	return email, nil
}

// AdminEmail email администратора из контекста; пустая строка, если запрос не прошел AdminAuth
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

// WithAdminEmail контекст с email администратора (для тестов обработчиков)
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}
