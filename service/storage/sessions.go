package storage

import (
	"context"
	"encoding/json"
	"time"

	redisc "SocialChat/service/storage/redis"
	"SocialChat/tools/errs"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Session is the server-side login record. The key is the token hash, so a
// leaked dump never contains usable tokens; deleting the record revokes the
// login before the JWT itself expires.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	LoginTime time.Time `json:"login_time"`
	UserAgent string    `json:"user_agent,omitempty"`
	IP        string    `json:"ip,omitempty"`
}

// session key: sess:<tokenHash>
func sessionKey(tokenHash string) string { return "sess:" + tokenHash }

// SaveSession stores the login record with the token's TTL.
func SaveSession(ctx context.Context, tokenHash string, s Session, ttl time.Duration) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errs.WrapMsg(err, "marshal session", "session_id", s.SessionID)
	}
	return redisc.GetRedis().Set(ctx, sessionKey(tokenHash), b, ttl).Err()
}

// LookupSession returns the login record for a token hash, ok=false when the
// session does not exist or was revoked.
func LookupSession(ctx context.Context, tokenHash string) (Session, bool, error) {
	val, err := redisc.GetRedis().Get(ctx, sessionKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return Session{}, false, errs.WrapMsg(err, "unmarshal session")
	}
	return s, true, nil
}

// RevokeSession deletes the login record (logout).
func RevokeSession(ctx context.Context, tokenHash string) error {
	return redisc.GetRedis().Del(ctx, sessionKey(tokenHash)).Err()
}

// TouchSession renews the record TTL on activity.
func TouchSession(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return redisc.GetRedis().Expire(ctx, sessionKey(tokenHash), ttl).Err()
}
