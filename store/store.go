// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/livepoll/livepoll/models"
)

var (
	ErrNotFound      = errors.New("poll not found")
	ErrAlreadyVoted  = errors.New("you have already voted on this poll")
	ErrInvalidOption = errors.New("invalid option")
)

// ValidationError reports malformed poll-creation input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PollStore owns all reads and writes of poll state. Nothing else in the
// server touches the poll tables.
type PollStore struct {
	db *sql.DB
}

func New(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// Create validates and persists a new poll with zeroed counters.
func (s *PollStore) Create(ctx context.Context, question string, options []string, creatorID string) (*models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &ValidationError{Reason: "question is required"}
	}
	if len(options) < 2 {
		return nil, &ValidationError{Reason: "poll must have at least 2 options"}
	}
	for _, text := range options {
		if strings.TrimSpace(text) == "" {
			return nil, &ValidationError{Reason: "option text cannot be empty"}
		}
	}

	pollID := uuid.NewString()
	createdAt := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, creator_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, pollID, question, creatorID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, text := range options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_option (poll_id, idx, text, votes)
			VALUES ($1, $2, $3, 0)
		`, pollID, i, text)
		if err != nil {
			return nil, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit poll: %w", err)
	}

	poll := &models.Poll{
		ID:              pollID,
		Question:        question,
		Options:         make([]models.Option, len(options)),
		Creator:         creatorID,
		VotedIdentities: []string{},
		CreatedAt:       createdAt,
	}
	for i, text := range options {
		poll.Options[i] = models.Option{Text: text}
	}
	return poll, nil
}

// GetByID loads a poll with its options and counted voter identities.
func (s *PollStore) GetByID(ctx context.Context, id string) (*models.Poll, error) {
	return getByID(ctx, s.db, id)
}

// ListAll returns every poll, newest first.
func (s *PollStore) ListAll(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, creator_id, created_at
		FROM poll
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	index := make(map[string]int)
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.Creator, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		p.Options = []models.Option{}
		p.VotedIdentities = []string{}
		index[p.ID] = len(polls)
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	optRows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, text, votes
		FROM poll_option
		ORDER BY poll_id, idx
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		var pollID string
		var opt models.Option
		if err := optRows.Scan(&pollID, &opt.Text, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		if i, ok := index[pollID]; ok {
			polls[i].Options = append(polls[i].Options, opt)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}

	voterRows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, voter_identity
		FROM poll_voter
		ORDER BY poll_id, voted_at, voter_identity
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer voterRows.Close()

	for voterRows.Next() {
		var pollID, identity string
		if err := voterRows.Scan(&pollID, &identity); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		if i, ok := index[pollID]; ok {
			polls[i].VotedIdentities = append(polls[i].VotedIdentities, identity)
		}
	}
	if err := voterRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}

	return polls, nil
}

// CastVote admits or rejects a vote and, if admitted, durably applies it.
// The whole check-then-act sequence runs in one transaction so concurrent
// votes on the same poll serialize on the database, never in application
// code. A rejection rolls back and leaves the poll untouched.
//
// The identity check runs before the option-index check: a duplicate
// identity is rejected even when the index is also bad, and an invalid
// index from a fresh identity does not consume that identity's one vote.
func (s *PollStore) CastVote(ctx context.Context, id, voterIdentity string, optionIndex int) (*models.Poll, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check poll: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO poll_voter (poll_id, voter_identity, voted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (poll_id, voter_identity) DO NOTHING
	`, id, voterIdentity, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to record voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to record voter: %w", err)
	}
	if affected == 0 {
		return nil, ErrAlreadyVoted
	}

	// Concurrent votes for the same option serialize on this row lock,
	// so increments are never lost.
	res, err = tx.ExecContext(ctx, `
		UPDATE poll_option
		SET votes = votes + 1
		WHERE poll_id = $1 AND idx = $2
	`, id, optionIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to increment votes: %w", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to increment votes: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvalidOption
	}

	poll, err := getByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}
	return poll, nil
}

// querier abstracts *sql.DB and *sql.Tx so poll loading can run either
// standalone or inside the vote transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getByID(ctx context.Context, q querier, id string) (*models.Poll, error) {
	var p models.Poll
	err := q.QueryRowContext(ctx, `
		SELECT id, question, creator_id, created_at
		FROM poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Question, &p.Creator, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT text, votes
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY idx
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	p.Options = []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.Text, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		p.Options = append(p.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}

	voterRows, err := q.QueryContext(ctx, `
		SELECT voter_identity
		FROM poll_voter
		WHERE poll_id = $1
		ORDER BY voted_at, voter_identity
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer voterRows.Close()

	p.VotedIdentities = []string{}
	for voterRows.Next() {
		var identity string
		if err := voterRows.Scan(&identity); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		p.VotedIdentities = append(p.VotedIdentities, identity)
	}
	if err := voterRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}

	return &p, nil
}
