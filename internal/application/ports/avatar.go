package ports

import "context"

// AvatarFinder is best effort: ok is false whenever no avatar could be resolved.
type AvatarFinder interface {
	Find(ctx context.Context, email string) (url string, ok bool)
}
