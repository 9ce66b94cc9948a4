package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolesync/internal/badges"
	"rolesync/internal/membership"
	"rolesync/internal/progression/models"
	"rolesync/pkg/sentinel"
)

const memberID = "285000000000000001"

type ReconcilerSuite struct {
	suite.Suite
	members    *membership.Memory
	reconciler *Reconciler
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	s.members = membership.NewMemory()
	s.reconciler = New(s.members, nil)
}

func (s *ReconcilerSuite) TestGrantsComputedBadges() {
	s.members.Join(memberID)
	res := badges.Resolve(&models.Record{Metabits: 1_000_000_000, BetaTester: true})

	result, err := s.reconciler.Reconcile(context.Background(), memberID, res)
	s.Require().NoError(err)

	s.Equal([]badges.ID{badges.RealityExplorer, badges.BetaTester}, result.Target)
	s.Equal([]string{"Reality Explorer", "Beta Tester"}, result.NewlyGained)

	held, err := s.members.Badges(context.Background(), memberID)
	s.Require().NoError(err)
	s.ElementsMatch(result.Target, held)
}

func (s *ReconcilerSuite) TestFullReplaceDropsUnlistedBadges() {
	// The member holds a stale tier badge and a custom badge. Only the
	// custom badge is allow-listed, so the stale tier is stripped even
	// though the member earned it once.
	custom := badges.ID("841219800245143572")
	s.members.Join(memberID, badges.PaleontologistLegend, custom)

	res := badges.Resolve(&models.Record{DinoRank: 26})
	result, err := s.reconciler.Reconcile(context.Background(), memberID, res)
	s.Require().NoError(err)

	s.ElementsMatch([]badges.ID{custom, badges.Paleontologist}, result.Target)
	s.NotContains(result.Target, badges.PaleontologistLegend)
	s.Equal([]string{"Paleontologist"}, result.NewlyGained)
}

func (s *ReconcilerSuite) TestIdempotentRerun() {
	s.members.Join(memberID)
	res := badges.Resolve(&models.Record{Metabits: 1_000_000_000_000, AllSharksObtained: true})

	first, err := s.reconciler.Reconcile(context.Background(), memberID, res)
	s.Require().NoError(err)
	s.Len(first.NewlyGained, 2)

	second, err := s.reconciler.Reconcile(context.Background(), memberID, res)
	s.Require().NoError(err)
	s.Empty(second.NewlyGained, "nothing is newly gained on an unchanged rerun")
	s.Equal(first.Target, second.Target)
}

func (s *ReconcilerSuite) TestGainedNamesFollowTrackOrder() {
	s.members.Join(memberID)
	res := badges.Resolve(&models.Record{
		BetaTester: true,
		Metabits:   100_000_000_000_000,
		DinoRank:   500,
	})

	result, err := s.reconciler.Reconcile(context.Background(), memberID, res)
	s.Require().NoError(err)
	s.Equal([]string{"Reality Legend", "Paleontologist Legend", "Beta Tester"}, result.NewlyGained)
}

func (s *ReconcilerSuite) TestUnknownMemberIsFatal() {
	res := badges.Resolve(&models.Record{Metabits: 1_000_000_000})

	_, err := s.reconciler.Reconcile(context.Background(), "999000000000000000", res)
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrUnknownMember)
}

type failingReplaceClient struct {
	*membership.Memory
}

func (f failingReplaceClient) ReplaceBadges(context.Context, string, []badges.ID) error {
	return errors.New("gateway timeout")
}

func (s *ReconcilerSuite) TestReplaceFailurePropagates() {
	s.members.Join(memberID)
	rec := New(failingReplaceClient{s.members}, nil)

	_, err := rec.Reconcile(context.Background(), memberID, badges.Resolve(&models.Record{BetaTester: true}))
	s.Require().Error(err)

	held, berr := s.members.Badges(context.Background(), memberID)
	s.Require().NoError(berr)
	s.Empty(held, "failed replace must not leave partial state behind")
}
