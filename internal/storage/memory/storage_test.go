package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tannerhall/floorman/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player directory tests

func (s *StorageSuite) TestSaveAndGetPlayers() {
	player := &model.Player{
		AccountNumber: "00000000000001",
		FirstName:     "Ada",
		LastName:      "Marsh",
		EntryType:     model.EntryTypePay,
		CreatedAt:     time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, "Fall Classic", player)
	s.Require().NoError(err)

	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(player.AccountNumber, players[0].AccountNumber)
	s.Equal("Ada", players[0].FirstName)
}

func (s *StorageSuite) TestGetPlayersEmptyEvent() {
	players, err := s.storage.GetPlayers(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestReplacePlayersIsFullReplace() {
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{AccountNumber: "00000000000001"})

	err := s.storage.ReplacePlayers(s.ctx, "Fall Classic", []*model.Player{
		{AccountNumber: "00000000000002"},
		{AccountNumber: "00000000000003"},
	})
	s.Require().NoError(err)

	players, err := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Len(players, 2)
	for _, p := range players {
		s.NotEqual(model.AccountNumber("00000000000001"), p.AccountNumber)
	}
}

func (s *StorageSuite) TestPlayersAreScopedPerEvent() {
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{AccountNumber: "00000000000001"})

	players, err := s.storage.GetPlayers(s.ctx, "Spring Shootout")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestGetPlayersReturnsCopies() {
	_ = s.storage.SavePlayer(s.ctx, "Fall Classic", &model.Player{
		AccountNumber: "00000000000001",
		FirstName:     "Ada",
	})

	players, _ := s.storage.GetPlayers(s.ctx, "Fall Classic")
	players[0].FirstName = "changed"

	again, _ := s.storage.GetPlayers(s.ctx, "Fall Classic")
	s.Equal("Ada", again[0].FirstName)
}

// Registration ledger tests

func (s *StorageSuite) TestCommitAndGetRegistrations() {
	regs := []*model.Registration{
		{ID: "reg-1", AccountNumber: "00000000000001", EventName: "Fall Classic", Round: model.RoundOne},
		{ID: "reg-2", AccountNumber: "00000000000002", EventName: "Fall Classic", Round: model.RoundOne},
	}

	err := s.storage.CommitRegistrations(s.ctx, "Fall Classic", regs)
	s.Require().NoError(err)

	got, err := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Len(got, 2)
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

func (s *StorageSuite) TestGetRegistrationsReturnsDeepCopies() {
	slot, table, seat := 1, 2, 3
	_ = s.storage.CommitRegistrations(s.ctx, "Fall Classic", []*model.Registration{
		{ID: "reg-1", TimeSlot: &slot, TableNumber: &table, SeatNumber: &seat},
	})

	got, _ := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	got[0].ClearSeat()

	again, _ := s.storage.GetRegistrations(s.ctx, "Fall Classic")
	s.True(again[0].Seated())
}

// Tournament config tests

func (s *StorageSuite) TestSaveAndGetTournament() {
	tour := model.DefaultTournament("Fall Classic")

	err := s.storage.SaveTournament(s.ctx, tour)
	s.Require().NoError(err)

	got, err := s.storage.GetTournament(s.ctx, "Fall Classic")
	s.Require().NoError(err)
	s.Equal(500, got.EntryCost)
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

func (s *StorageSuite) TestDisabledTableIsPerTimeSlot() {
	key := model.TableKey{EventName: "Fall Classic", Round: model.RoundOne, TimeSlot: 1, Table: 3}
	_ = s.storage.SetDisabledTable(s.ctx, key, true)

	otherSlot := key
	otherSlot.TimeSlot = 2

	tables, _ := s.storage.GetDisabledTables(s.ctx, "Fall Classic")
	s.True(tables[key])
	s.False(tables[otherSlot])
}

func (s *StorageSuite) TestReEnablingTableClearsFlag() {
	key := model.TableKey{EventName: "Fall Classic", Round: model.RoundOne, TimeSlot: 1, Table: 3}
	_ = s.storage.SetDisabledTable(s.ctx, key, true)
	_ = s.storage.SetDisabledTable(s.ctx, key, false)

	tables, _ := s.storage.GetDisabledTables(s.ctx, "Fall Classic")
	s.Empty(tables)
}
