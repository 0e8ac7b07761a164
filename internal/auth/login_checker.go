package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged checks whether the given token belongs to a live session.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	session, err := c.GetSession(ctx, token)
	if err != nil {
		return false, err
	}
	return time.Since(session.CreatedAt) <= c.ttl, nil
}

// GetSession returns the session stored for the given token, including
// the id of the user it was created for.
func (c *LoginChecker) GetSession(ctx context.Context, token string) (LoginSession, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return LoginSession{}, err
	}
	return parseSessionValue(token, cmd.Val())
}
