package auth

import "context"

type viewerKey struct{}

func WithViewer(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, viewerKey{}, userID)
}

// ViewerFrom returns the authenticated user id stored by WithViewer.
func ViewerFrom(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(viewerKey{}).(int64)
	return userID, ok
}
