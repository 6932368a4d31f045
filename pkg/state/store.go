// Package state implements the shared team state store: one JSON document
// per team, sanitized on every read and write, plus the encrypted provider
// credential store and the stale-run sweeper.
package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scoutqa/scout/ent"
	"github.com/scoutqa/scout/ent/teamstate"
	"github.com/scoutqa/scout/pkg/models"
)

// Store persists team state documents and provider credentials.
type Store struct {
	client *ent.Client
	cipher *Cipher
}

// NewStore creates a store over the given ent client. cipher may be nil when
// provider credentials are not used (tests).
func NewStore(client *ent.Client, cipher *Cipher) *Store {
	return &Store{client: client, cipher: cipher}
}

// GetOrCreate returns the team's state document, inserting a default document
// if none exists. The returned document is sanitized.
func (s *Store) GetOrCreate(ctx context.Context, teamID string) (*models.TeamState, error) {
	row, err := s.client.TeamState.Query().
		Where(teamstate.IDEQ(teamID)).
		Only(ctx)
	if err == nil {
		st := row.State
		Sanitize(st)
		return st, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load team state: %w", err)
	}

	st := models.NewTeamState()
	_, err = s.client.TeamState.Create().
		SetID(teamID).
		SetState(st).
		Save(ctx)
	if err != nil {
		// Lost a create race — re-read the winner's document.
		if ent.IsConstraintError(err) {
			return s.GetOrCreate(ctx, teamID)
		}
		return nil, fmt.Errorf("failed to create team state: %w", err)
	}

	slog.Info("Created default team state", "team_id", teamID)
	return st, nil
}

// Save sanitizes and upserts the team's state document. Writers are expected
// to have re-read recently; the upsert is last-write-wins keyed by team id.
func (s *Store) Save(ctx context.Context, teamID, updatedBy string, st *models.TeamState) error {
	Sanitize(st)

	n, err := s.client.TeamState.Update().
		Where(teamstate.IDEQ(teamID)).
		SetState(st).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save team state: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.TeamState.Create().
		SetID(teamID).
		SetState(st).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert team state: %w", err)
	}
	return nil
}

// Mutate runs fn against a freshly loaded document and saves the result.
// This is the read-modify-write helper the AI pipeline uses for claims and
// completion appends, keeping the clobber window as small as possible.
func (s *Store) Mutate(ctx context.Context, teamID, updatedBy string, fn func(*models.TeamState) error) (*models.TeamState, error) {
	st, err := s.GetOrCreate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, teamID, updatedBy, st); err != nil {
		return nil, err
	}
	return st, nil
}
