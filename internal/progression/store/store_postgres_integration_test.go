//go:build integration

package store

import (
	"context"
	_ "embed"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"rolesync/internal/progression/models"
	"rolesync/pkg/requestcontext"
	"rolesync/pkg/sentinel"
	"rolesync/pkg/testutil/containers"
)

//go:embed schema.sql
var schema string

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T(), schema)
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background(), "userdata"))
}

func (s *PostgresStoreSuite) TestFetchMissingToken() {
	rec, err := s.store.Fetch(context.Background(), testToken)
	s.Nil(rec)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestWriteInsertsAndStampsLastModified() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ctx := requestcontext.WithTime(context.Background(), now)

	metabits := int64(1_000_000_000_000)
	beta := true
	rec, err := s.store.Write(ctx, testToken, models.Update{Metabits: &metabits, BetaTester: &beta})
	s.Require().NoError(err)

	s.Equal(testToken, rec.IdentityToken)
	s.Equal(metabits, rec.Metabits)
	s.True(rec.BetaTester)
	s.Nil(rec.SingularitySpeedrunTime)
	s.True(rec.LastModified.Equal(now), "last_modified should be the request-scoped clock")
}

func (s *PostgresStoreSuite) TestPartialWriteKeepsStoredValues() {
	speedrun := 110.25
	rank := 300
	_, err := s.store.Write(context.Background(), testToken, models.Update{
		SingularitySpeedrunTime: &speedrun,
		DinoRank:                &rank,
	})
	s.Require().NoError(err)

	metabits := int64(7)
	rec, err := s.store.Write(context.Background(), testToken, models.Update{Metabits: &metabits})
	s.Require().NoError(err)

	s.Equal(int64(7), rec.Metabits)
	s.Equal(300, rec.DinoRank, "fields not named in the update keep their stored values")
	s.Require().NotNil(rec.SingularitySpeedrunTime)
	s.Equal(110.25, *rec.SingularitySpeedrunTime)
}

func (s *PostgresStoreSuite) TestWriteThenFetchRoundTrip() {
	sharks := true
	hidden := true
	written, err := s.store.Write(context.Background(), testToken, models.Update{
		AllSharksObtained:             &sharks,
		AllHiddenAchievementsObtained: &hidden,
	})
	s.Require().NoError(err)

	fetched, err := s.store.Fetch(context.Background(), testToken)
	s.Require().NoError(err)
	s.Equal(written.IdentityToken, fetched.IdentityToken)
	s.True(fetched.AllSharksObtained)
	s.True(fetched.AllHiddenAchievementsObtained)
}
