package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

const ContextUserID = "userID"

// SessionAuth admits requests carrying a bearer token for the user who is
// currently signed in. A token for a user that logged out is rejected.
func SessionAuth(secret string, holder *state.Holder) gin.HandlerFunc {
	return session(secret, holder, true)
}

// OptionalSession lets requests without a token through anonymously, so
// the use case can answer login_required itself. A token that is present
// must still be valid.
func OptionalSession(secret string, holder *state.Holder) gin.HandlerFunc {
	return session(secret, holder, false)
}

func session(secret string, holder *state.Holder, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abort(c, "missing_authorization_header")
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abort(c, "invalid_token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			abort(c, "invalid_token_claims")
			return
		}
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			abort(c, "invalid_token_payload")
			return
		}

		user := holder.Current().User
		if user == nil || user.ID != userID {
			httperr.LoginRequired(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func abort(c *gin.Context, code string) {
	httperr.Write(c, http.StatusUnauthorized, code, "Sesión inválida.")
	c.Abort()
}

// UserID returns the id stored by SessionAuth or OptionalSession, or zero
// for anonymous requests.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
