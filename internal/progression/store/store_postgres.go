package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rolesync/internal/progression/models"
	"rolesync/pkg/requestcontext"
	"rolesync/pkg/sentinel"
)

// Postgres persists progression records in PostgreSQL. The *sql.DB pool is
// owned by the caller; see schema.sql for the table definition.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const fetchQuery = `
	SELECT identity_token, member_id, beta_tester, metabits, dino_rank,
	       prestige_rank, beyond_rank, singularity_speedrun_time,
	       all_sharks_obtained, all_hidden_achievements_obtained, last_modified
	FROM userdata
	WHERE identity_token = $1
`

func (s *Postgres) Fetch(ctx context.Context, token string) (*models.Record, error) {
	row := s.db.QueryRowContext(ctx, fetchQuery, token)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("fetch userdata: %w", err)
	}
	return rec, nil
}

// writeQuery upserts only the fields the update names: a NULL parameter
// keeps the stored value (or the column default on first insert).
const writeQuery = `
	INSERT INTO userdata (
		identity_token, beta_tester, metabits, dino_rank, prestige_rank,
		beyond_rank, singularity_speedrun_time, all_sharks_obtained,
		all_hidden_achievements_obtained, last_modified
	) VALUES (
		$1, COALESCE($2, false), COALESCE($3, 0), COALESCE($4, 0),
		COALESCE($5, 0), COALESCE($6, 0), $7, COALESCE($8, false),
		COALESCE($9, false), $10
	)
	ON CONFLICT (identity_token) DO UPDATE SET
		beta_tester                      = COALESCE($2, userdata.beta_tester),
		metabits                         = COALESCE($3, userdata.metabits),
		dino_rank                        = COALESCE($4, userdata.dino_rank),
		prestige_rank                    = COALESCE($5, userdata.prestige_rank),
		beyond_rank                      = COALESCE($6, userdata.beyond_rank),
		singularity_speedrun_time        = COALESCE($7, userdata.singularity_speedrun_time),
		all_sharks_obtained              = COALESCE($8, userdata.all_sharks_obtained),
		all_hidden_achievements_obtained = COALESCE($9, userdata.all_hidden_achievements_obtained),
		last_modified                    = $10
	RETURNING identity_token, member_id, beta_tester, metabits, dino_rank,
	          prestige_rank, beyond_rank, singularity_speedrun_time,
	          all_sharks_obtained, all_hidden_achievements_obtained, last_modified
`

func (s *Postgres) Write(ctx context.Context, token string, upd models.Update) (*models.Record, error) {
	row := s.db.QueryRowContext(ctx, writeQuery,
		token,
		upd.BetaTester,
		upd.Metabits,
		upd.DinoRank,
		upd.PrestigeRank,
		upd.BeyondRank,
		upd.SingularitySpeedrunTime,
		upd.AllSharksObtained,
		upd.AllHiddenAchievementsObtained,
		requestcontext.Now(ctx),
	)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("write userdata: %w", err)
	}
	return rec, nil
}

func scanRecord(row *sql.Row) (*models.Record, error) {
	var rec models.Record
	var speedrun sql.NullFloat64
	err := row.Scan(
		&rec.IdentityToken,
		&rec.MemberID,
		&rec.BetaTester,
		&rec.Metabits,
		&rec.DinoRank,
		&rec.PrestigeRank,
		&rec.BeyondRank,
		&speedrun,
		&rec.AllSharksObtained,
		&rec.AllHiddenAchievementsObtained,
		&rec.LastModified,
	)
	if err != nil {
		return nil, err
	}
	if speedrun.Valid {
		rec.SingularitySpeedrunTime = &speedrun.Float64
	}
	return &rec, nil
}
