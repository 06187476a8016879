package services

import (
	"context"
	"errors"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// SessionService creates and resumes sessions keyed by a signed session
// token. Every token maps to its own independent state.
type SessionService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  SessionStore
}

func NewSessionService(logger *gecho.Logger, cfg *structs.Config, store SessionStore) *SessionService {
	return &SessionService{
		logger: logger,
		cfg:    cfg,
		store:  store,
	}
}

// Create starts an empty session and returns it with its token.
func (ss *SessionService) Create(ctx context.Context) (*structs.Session, string, time.Time, error) {
	id := lib.NewSessionId()

	token, exp, err := lib.IssueSessionToken(id, ss.cfg.Session.Secret, ss.cfg.Session.TTL)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	session := structs.NewSession(id.String())
	if err := ss.store.Save(ctx, session); err != nil {
		return nil, "", time.Time{}, err
	}

	ss.logger.Debug("Session created", gecho.Field("session_id", session.Id))
	return session, token, exp, nil
}

// Resume loads the session a token refers to.
func (ss *SessionService) Resume(ctx context.Context, token string) (*structs.Session, error) {
	session, _, err := ss.resume(ctx, token)
	return session, err
}

func (ss *SessionService) resume(ctx context.Context, token string) (*structs.Session, *lib.SessionClaims, error) {
	claims, err := lib.ParseSessionToken(token, ss.cfg.Session.Secret)
	if err != nil {
		return nil, nil, err
	}
	session, err := ss.store.Load(ctx, claims.Sub.String())
	if err != nil {
		return nil, nil, err
	}
	return session, claims, nil
}

// ResumeOrCreate resumes the session behind token, or starts a new one when
// the token is missing, invalid or points at an expired session. A token
// past half its lifetime is renewed so active sessions keep sliding with the
// store TTL. The returned token is empty when the existing one is kept.
func (ss *SessionService) ResumeOrCreate(ctx context.Context, token string) (*structs.Session, string, time.Time, error) {
	if token != "" {
		session, claims, err := ss.resume(ctx, token)
		if err == nil {
			if time.Until(claims.Exp) > ss.cfg.Session.TTL/2 {
				return session, "", time.Time{}, nil
			}
			return ss.renew(ctx, session)
		}
		if !isStaleSession(err) {
			return nil, "", time.Time{}, err
		}
		ss.logger.Debug("Discarding stale session token", gecho.Field("reason", err))
	}
	return ss.Create(ctx)
}

// renew issues a fresh token for an existing session and refreshes its store
// TTL to match.
func (ss *SessionService) renew(ctx context.Context, session *structs.Session) (*structs.Session, string, time.Time, error) {
	id, err := uuid.Parse(session.Id)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := lib.IssueSessionToken(id, ss.cfg.Session.Secret, ss.cfg.Session.TTL)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := ss.store.Save(ctx, session); err != nil {
		return nil, "", time.Time{}, err
	}

	ss.logger.Debug("Session token renewed", gecho.Field("session_id", session.Id))
	return session, token, exp, nil
}

func (ss *SessionService) Save(ctx context.Context, session *structs.Session) error {
	return ss.store.Save(ctx, session)
}

func (ss *SessionService) Destroy(ctx context.Context, id string) error {
	return ss.store.Delete(ctx, id)
}

func isStaleSession(err error) bool {
	return errors.Is(err, lib.ErrSessionNotFound) ||
		errors.Is(err, lib.ErrInvalidToken) ||
		errors.Is(err, lib.ErrExpiredToken)
}
