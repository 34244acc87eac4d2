package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/users"
	"github.com/2beens/gymtracker/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenHeader      = "X-GYM-TOKEN"
	sessionKeyPrefix = "gym-user||"
	tokensSetKey     = "gym-user-sessions"
	tokenLength      = 35
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the logged in user slot, stored in redis under its token.
type Session struct {
	Token     string     `json:"token"`
	User      users.User `json:"user"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (s Session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

type storedSession struct {
	User      users.User `json:"user"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	Now            func() time.Time
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		Now:            time.Now,
	}
}

// Login opens a new session for the user.
func (as *Service) Login(ctx context.Context, user users.User) (Session, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		Token:     token,
		User:      user,
		CreatedAt: as.Now().UTC().Truncate(time.Second),
	}
	sessionJson, err := json.Marshal(storedSession{
		User:      session.User,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return Session{}, fmt.Errorf("marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, string(sessionJson), as.ttl).Err(); err != nil {
		return Session{}, err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Logout clears the session slot. It reports false when there was no session for the token.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Del(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return cmd.Val() > 0, nil
}

// Session returns the live session for token, ErrSessionNotFound if there is none.
func (as *Service) Session(ctx context.Context, token string) (Session, error) {
	session, err := loadSession(ctx, as.redisClient, token)
	if err != nil {
		return Session{}, err
	}
	if session.expired(as.ttl, as.Now()) {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := as.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := loadSession(ctx, as.redisClient, token)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				// expired in redis already, only the set entry is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if session.expired(as.ttl, now) {
			log.Debugf("=>\twill clean the session of user: %s", session.User.Email)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if _, err := as.Logout(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}

func loadSession(ctx context.Context, redisClient *redis.Client, token string) (Session, error) {
	cmd := redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(cmd.Val()), &stored); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return Session{
		Token:     token,
		User:      stored.User,
		CreatedAt: stored.CreatedAt,
	}, nil
}
