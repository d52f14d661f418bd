package api

import "context"

type keyType string

const tokenIDKey keyType = "tokenID"

// ctxWithTokenID records which admin token authorized the request
func ctxWithTokenID(ctx context.Context, tokenID string) context.Context {
	return context.WithValue(ctx, tokenIDKey, tokenID)
}

func ctxGetTokenID(ctx context.Context) string {
	tokenID, _ := ctx.Value(tokenIDKey).(string)
	return tokenID
}
