package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/6ogunt48/class-manager/domain"
)

const (
	keyTeacherAssignments = "assignments:teacher:%d"
	keyStudentMarks       = "marks:student:%d"
)

// ListingCacheImpl caches teacher assignment listings and student mark
// listings in Redis. Entries are short-lived and invalidated on the writes
// that would change them.
type ListingCacheImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListingCache returns a new ListingCache.
func NewListingCache(rdb *redis.Client, ttl time.Duration) domain.ListingCache {
	return &ListingCacheImpl{rdb: rdb, ttl: ttl}
}

// GetTeacherAssignments returns the cached listing or nil on miss.
func (c *ListingCacheImpl) GetTeacherAssignments(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	b, err := c.rdb.Get(ctx, fmt.Sprintf(keyTeacherAssignments, teacherID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []domain.Assignment
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetTeacherAssignments stores the listing.
func (c *ListingCacheImpl) SetTeacherAssignments(ctx context.Context, teacherID uint, assignments []domain.Assignment) error {
	b, err := json.Marshal(assignments)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(keyTeacherAssignments, teacherID), b, c.ttl).Err()
}

// InvalidateTeacherAssignments removes the listing (invalidation on write).
func (c *ListingCacheImpl) InvalidateTeacherAssignments(ctx context.Context, teacherID uint) error {
	return c.rdb.Del(ctx, fmt.Sprintf(keyTeacherAssignments, teacherID)).Err()
}

// GetStudentMarks returns the cached listing or nil on miss.
func (c *ListingCacheImpl) GetStudentMarks(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	b, err := c.rdb.Get(ctx, fmt.Sprintf(keyStudentMarks, studentID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []domain.Mark
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetStudentMarks stores the listing.
func (c *ListingCacheImpl) SetStudentMarks(ctx context.Context, studentID uint, marks []domain.Mark) error {
	b, err := json.Marshal(marks)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(keyStudentMarks, studentID), b, c.ttl).Err()
}

// InvalidateStudentMarks removes the listing (invalidation on write).
func (c *ListingCacheImpl) InvalidateStudentMarks(ctx context.Context, studentID uint) error {
	return c.rdb.Del(ctx, fmt.Sprintf(keyStudentMarks, studentID)).Err()
}
