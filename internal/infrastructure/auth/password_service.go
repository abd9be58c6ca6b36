package auth

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"

	"github.com/6ogunt48/class-manager/domain"
)

// PasswordServiceImpl implements domain.PasswordService. Hashing is
// dispatched through a bounded worker gate so a burst of registrations
// cannot monopolise every scheduler thread with bcrypt work.
type PasswordServiceImpl struct {
	cost  int
	slots chan struct{}
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 {
		workers = 2
	}
	return &PasswordServiceImpl{
		cost:  bcrypt.DefaultCost,
		slots: make(chan struct{}, workers),
	}
}

// Hash implements domain.PasswordService. It waits for a worker slot,
// respecting ctx while queued, and runs bcrypt off the calling goroutine.
func (p *PasswordServiceImpl) Hash(ctx context.Context, password string) (string, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	type result struct {
		hash string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() { <-p.slots }()
		hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
		done <- result{hash: string(hashedBytes), err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return r.hash, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Verify implements domain.PasswordService. A malformed digest is reported
// as a mismatch, never as an error.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
