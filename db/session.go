/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/session"
	"github.com/jackc/pgx/v5"
)

// PostgresSessionConfig contains options for the PostgreSQL session store
type PostgresSessionConfig struct {
	// Lifetime is the duration to have no access to a session before being recycled.
	// Default is 7 days.
	Lifetime time.Duration
	// TableName is the name of the session table. Default is "flamego_sessions".
	TableName string
	// Encoder is the encoder to encode session data. Default is session.GobEncoder.
	Encoder session.Encoder
	// Decoder is the decoder to decode session data. Default is session.GobDecoder.
	Decoder session.Decoder
}

// PostgresSessionStore implements session.Store for PostgreSQL. It keeps
// the dashboard view state of each browser between requests.
type PostgresSessionStore struct {
	config  PostgresSessionConfig
	encoder session.Encoder
	decoder session.Decoder
}

// PostgresSessionIniter returns the Initer for the PostgreSQL session store
func PostgresSessionIniter() session.Initer {
	return func(_ context.Context, args ...interface{}) (session.Store, error) {
		var config PostgresSessionConfig
		if len(args) > 0 {
			var ok bool
			config, ok = args[0].(PostgresSessionConfig)
			if !ok {
				return nil, errInvalidSessionConfig
			}
		}

		if config.Lifetime == 0 {
			config.Lifetime = 7 * 24 * time.Hour
		}
		if config.TableName == "" {
			config.TableName = "flamego_sessions"
		}
		if config.Encoder == nil {
			config.Encoder = session.GobEncoder
		}
		if config.Decoder == nil {
			config.Decoder = session.GobDecoder
		}

		return &PostgresSessionStore{
			config:  config,
			encoder: config.Encoder,
			decoder: config.Decoder,
		}, nil
	}
}

func (s *PostgresSessionStore) table() string {
	return pgx.Identifier{s.config.TableName}.Sanitize()
}

// Exist returns true if the session with given ID exists and hasn't expired
func (s *PostgresSessionStore) Exist(ctx context.Context, sid string) bool {
	if pool == nil {
		return false
	}

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+s.table()+` WHERE id = $1 AND expires_at > NOW())`,
		sid,
	).Scan(&exists)

	return err == nil && exists
}

// Read returns the session with given ID. A missing, expired or undecodable
// session yields a fresh one with the same ID.
func (s *PostgresSessionStore) Read(ctx context.Context, sid string) (session.Session, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	// The session middleware writes the cookie itself.
	idWriter := func(http.ResponseWriter, *http.Request, string) {}

	var data []byte
	err := pool.QueryRow(ctx,
		`SELECT data FROM `+s.table()+` WHERE id = $1 AND expires_at > NOW()`,
		sid,
	).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) || (err == nil && len(data) == 0) {
		return session.NewBaseSession(sid, s.encoder, idWriter), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	sessionData, err := s.decoder(data)
	if err != nil {
		logger.Warn("Discarding undecodable session", "error", err)
		return session.NewBaseSession(sid, s.encoder, idWriter), nil
	}

	return session.NewBaseSessionWithData(sid, s.encoder, idWriter, sessionData), nil
}

// Destroy deletes session with given ID from the session store completely
func (s *PostgresSessionStore) Destroy(ctx context.Context, sid string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if _, err := pool.Exec(ctx, `DELETE FROM `+s.table()+` WHERE id = $1`, sid); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// Touch updates the expiry time of the session with given ID
func (s *PostgresSessionStore) Touch(ctx context.Context, sid string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	expiresAt := time.Now().Add(s.config.Lifetime)
	if _, err := pool.Exec(ctx,
		`UPDATE `+s.table()+` SET expires_at = $1 WHERE id = $2`,
		expiresAt, sid,
	); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// Save persists session data to the session store
func (s *PostgresSessionStore) Save(ctx context.Context, sess session.Session) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	data, err := sess.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	expiresAt := time.Now().Add(s.config.Lifetime)

	_, err = pool.Exec(ctx,
		`INSERT INTO `+s.table()+` (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			expires_at = EXCLUDED.expires_at`,
		sess.ID(), data, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GC removes expired sessions.
func (s *PostgresSessionStore) GC(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if _, err := pool.Exec(ctx, `DELETE FROM `+s.table()+` WHERE expires_at < NOW()`); err != nil {
		return fmt.Errorf("failed to collect expired sessions: %w", err)
	}

	return nil
}
