package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey holds the authenticated account id set by the auth middleware.
var AccountIDCtxKey = contextKey("accountID")

// TraceIDCtxKey holds the request trace id.
var TraceIDCtxKey = contextKey("traceID")

func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}

func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
