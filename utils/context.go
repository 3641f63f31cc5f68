package utils

import "context"

type ctxKey int

const requestIDCtxKey ctxKey = iota

// WithRequestID attaches the request id to ctx for code below the HTTP layer.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}
