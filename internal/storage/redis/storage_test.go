package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tannerhall/floorman/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player directory tests

func (s *StorageSuite) TestGetPlayersEmptyEvent() {
	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestSavePlayerAppends() {
	err := s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "00000000000001",
		FirstName:     "Ada",
		EntryType:     model.EntryTypePay,
	})
	s.Require().NoError(err)

	err = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "00000000000002",
		FirstName:     "Beth",
		EntryType:     model.EntryTypeComp,
	})
	s.Require().NoError(err)

	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestSavePlayerReplacesSameAccount() {
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "00000000000001",
		FirstName:     "Ada",
	})
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "00000000000001",
		FirstName:     "Adeline",
	})

	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Adeline", players[0].FirstName)
}

func (s *StorageSuite) TestReplacePlayers() {
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{AccountNumber: "00000000000001"})

	err := s.storage.ReplacePlayers(s.ctx, "Fall Classic", []*model.Player{
		{AccountNumber: "00000000000002"},
	})
	s.Require().NoError(err)

	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.AccountNumber("00000000000002"), players[0].AccountNumber)
}

// Registration ledger tests

func (s *StorageSuite) TestCommitAndGetRegistrations() {
	slot, table, seat := 1, 2, 3
	regs := []*model.Registration{
		{
			ID:            "reg-1",
			AccountNumber: "00000000000001",
			EventName:     "Fall Classic",
			Round:         model.RoundOne,
			PaymentType:   model.PaymentCash,
			PaymentAmount: 500,
			TimeSlot:      &slot,
			TableNumber:   &table,
			SeatNumber:    &seat,
		},
	}

	err := s.storage.CommitRegistrations(s.ctx, "Fall Classic", regs)
	s.Require().NoError(err)

	got, err := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.RegistrationID("reg-1"), got[0].ID)
	s.Require().NotNil(got[0].TableNumber)
	s.Equal(2, *got[0].TableNumber)
}

func (s *StorageSuite) TestCommitRegistrationsReplacesAll() {
	_ = s.storage.CommitRegistrations(s.ctx, "Fall Classic", []*model.Registration{
		{ID: "reg-1"}, {ID: "reg-2"},
	})
	_ = s.storage.CommitRegistrations(s.ctx, "Fall Classic", []*model.Registration{
		{ID: "reg-3"},
	})

	got, err := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.RegistrationID("reg-3"), got[0].ID)
}

func (s *StorageSuite) TestGetRegistrationsEmptyEvent() {
	got, err := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Empty(got)
}

// Tournament config tests

func (s *StorageSuite) TestSaveAndGetTournament() {
	err := s.storage.SaveTournament(s.ctx, model.DefaultTournament("Fall Classic"))
	s.Require().NoError(err)

	got, err := s.storage.GetTournament(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Equal(500, got.EntryCost)
	s.Equal(500, got.RebuyCost)
	s.Equal(100, got.MulliganCost)
}

func (s *StorageSuite) TestGetTournamentNotFound() {
	_, err := s.storage.GetTournament(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

// Disabled table tests

func (s *StorageSuite) TestSetAndGetDisabledTables() {
	key := model.TableKey{EventName: "Fall Classic", Round: model.RoundOne, TimeSlot: 1, Table: 3}

	err := s.storage.SetDisabledTable(s.ctx, key, true)
	s.Require().NoError(err)

	tables, err := s.storage.GetDisabledTables(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.True(tables[key])
}

func (s *StorageSuite) TestDisabledTablesRoundTripCompositeKey() {
	key := model.TableKey{EventName: "Fall Classic", Round: model.RoundSemifinals, TimeSlot: 4, Table: 2}
	_ = s.storage.SetDisabledTable(s.ctx, key, true)

	tables, err := s.storage.GetDisabledTables(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(tables, 1)
	s.True(tables[key])
}

func (s *StorageSuite) TestReEnablingTableClearsFlag() {
	key := model.TableKey{EventName: "Fall Classic", Round: model.RoundOne, TimeSlot: 1, Table: 3}
	_ = s.storage.SetDisabledTable(s.ctx, key, true)
	_ = s.storage.SetDisabledTable(s.ctx, key, false)

	tables, err := s.storage.GetDisabledTables(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Empty(tables)
}

func (s *StorageSuite) TestStoreUnavailableOnClosedServer() {
	s.mini.Close()

	_, err := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.ErrorIs(err, model.ErrStoreUnavailable)
}
