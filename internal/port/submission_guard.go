package port

import "context"

type SubmissionGuard interface {
	// Claim marks key as submitted, returns false if it was already claimed
	Claim(ctx context.Context, key string) (bool, error)
}
