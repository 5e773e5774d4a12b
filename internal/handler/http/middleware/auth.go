package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/iramedia/workreport-backend-go/internal/domain/auth"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/handler/http/response"
	"github.com/iramedia/workreport-backend-go/internal/pkg/jwt"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Logged-out access tokens keep their signature but are refused.
			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext builds the authorization subject from the verified
// token claims. AuthRequired must have run first.
func ActorFromContext(r *http.Request) submission.Actor {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return submission.Actor{}
	}

	actor := submission.Actor{}
	if id, ok := claims["user_id"].(string); ok {
		actor.UserID = id
	}
	if admin, ok := claims["is_admin"].(bool); ok {
		actor.IsAdmin = admin
	}
	if employment, ok := claims["employment_type"].(string); ok {
		actor.EmploymentType = employment
	}
	return actor
}
