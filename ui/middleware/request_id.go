package middleware

import (
	"context"
	"net/http"

	"spacexdash/domain/core"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the interaction ID in requests and responses.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// requestID returns the incoming ID if the client sent one, otherwise a new one.
func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return id
	}
	return core.NewRequestID().String()
}

// RequestID tags each gin request with an ID, echoed back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestID(c.Request)
		c.Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ctxKey{}, id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDHandler is the net/http form of RequestID, used with chi.
func RequestIDHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
