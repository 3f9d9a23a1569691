package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tannerhall/floorman/internal/dependencies/mocks"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage/memory"
	"github.com/tannerhall/floorman/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestAddNormalizesAccount() {
	added, err := s.service.Add(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "42",
		FirstName:     "Ada",
	})
	s.Require().NoError(err)
	s.Equal(model.AccountNumber("00000000000042"), added.AccountNumber)
	s.Equal(model.EntryTypePay, added.EntryType)
	s.Equal(s.clock.CurrentTime, added.CreatedAt)
}

func (s *ServiceSuite) TestAddRejectsDuplicateAccount() {
	_, err := s.service.Add(s.ctx, "Fall Classic", &model.Player{AccountNumber: "00000000000042"})
	s.Require().NoError(err)

	// Same account in un-normalized form still collides
	_, err = s.service.Add(s.ctx, "Fall Classic", &model.Player{AccountNumber: "42"})
	s.ErrorIs(err, model.ErrDuplicateAccount)
}

func (s *ServiceSuite) TestAddRejectsMalformedAccount() {
	_, err := s.service.Add(s.ctx, "Fall Classic", &model.Player{AccountNumber: "not-a-number"})
	s.ErrorIs(err, model.ErrAccountNotNumeric)
}

func (s *ServiceSuite) TestLookupByNormalizedAccount() {
	_, _ = s.service.Add(s.ctx, "Fall Classic", &model.Player{AccountNumber: "42", FirstName: "Ada"})

	found, err := s.service.Lookup(s.ctx, "Fall Classic", "0042")
	s.Require().NoError(err)
	s.Equal("Ada", found.FirstName)
}

func (s *ServiceSuite) TestLookupNotFound() {
	_, err := s.service.Lookup(s.ctx, "Fall Classic", "99")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestLookupRejectsMalformedInput() {
	_, err := s.service.Lookup(s.ctx, "Fall Classic", "123456789012345")
	s.ErrorIs(err, model.ErrAccountLength)
}

func (s *ServiceSuite) TestReplaceImportsBatch() {
	err := s.service.Replace(s.ctx, "Fall Classic", []*model.Player{
		{AccountNumber: "1", FirstName: "Ada"},
		{AccountNumber: "2", FirstName: "Beth", EntryType: model.EntryTypeComp},
	})
	s.Require().NoError(err)

	players, err := s.service.List(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestReplaceRejectsInBatchDuplicates() {
	err := s.service.Replace(s.ctx, "Fall Classic", []*model.Player{
		{AccountNumber: "1"},
		{AccountNumber: "0001"},
	})
	s.ErrorIs(err, model.ErrDuplicateAccount)

	// Nothing was written
	players, _ := s.service.List(s.ctx, "Fall Classic")
	s.Empty(players)
}

func (s *ServiceSuite) TestReplaceDropsPriorDirectory() {
	_, _ = s.service.Add(s.ctx, "Fall Classic", &model.Player{AccountNumber: "1"})

	err := s.service.Replace(s.ctx, "Fall Classic", []*model.Player{
		{AccountNumber: "2"},
	})
	s.Require().NoError(err)

	_, err = s.service.Lookup(s.ctx, "Fall Classic", "1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
