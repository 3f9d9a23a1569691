package registration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tannerhall/floorman/internal/dependencies/mocks"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/directory"
	"github.com/tannerhall/floorman/internal/storage/memory"
	"github.com/tannerhall/floorman/internal/testutil"
)

const testEvent = "spring-classic"

type EngineTestSuite struct {
	suite.Suite

	store  *memory.Storage
	clock  *mocks.MockClock
	engine *Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()
	dir := directory.New(s.store, s.clock, logger)
	s.engine = New(s.store, dir, s.clock, logger)
}

func (s *EngineTestSuite) enrollPlayer(account string, entryType model.EntryType) *model.Player {
	acct, err := model.NormalizeAccount(account)
	s.Require().NoError(err)
	p := &model.Player{
		AccountNumber: acct,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		EntryType:     entryType,
	}
	s.Require().NoError(s.store.SavePlayer(context.Background(), testEvent, p))
	return p
}

func (s *EngineTestSuite) commitEntries(entries ...*model.Registration) {
	existing, err := s.store.GetRegistrations(context.Background(), testEvent)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CommitRegistrations(context.Background(), testEvent, append(existing, entries...)))
}

func (s *EngineTestSuite) seatedEntry(account string, round model.Round, isMulligan bool) *model.Registration {
	acct, err := model.NormalizeAccount(account)
	s.Require().NoError(err)
	slot, table, seat := 1, 1, 1
	return &model.Registration{
		ID:            model.RegistrationID("fixed-" + account + "-" + string(round)),
		AccountNumber: acct,
		EventName:     testEvent,
		Round:         round,
		IsMulligan:    isMulligan,
		PaymentType:   model.PaymentCash,
		PaymentAmount: 500,
		TimeSlot:      &slot,
		TableNumber:   &table,
		SeatNumber:    &seat,
	}
}

func (s *EngineTestSuite) cashRequest(account string, round model.Round, amount int) SubmitRequest {
	return SubmitRequest{
		EventName:     testEvent,
		AccountNumber: account,
		Round:         round,
		TimeSlot:      1,
		Payment:       model.PaymentSpec{Type: model.PaymentCash, Amount: amount},
	}
}

func (s *EngineTestSuite) TestSearchUnknownPlayerRoundOne() {
	_, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundOne)
	s.ErrorIs(err, model.ErrNewPlayerRequired)
}

func (s *EngineTestSuite) TestSearchUnknownPlayerLaterRound() {
	_, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundTwo)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *EngineTestSuite) TestSearchPrefillsEntryCost() {
	s.enrollPlayer("42", model.EntryTypePay)

	result, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundOne)
	s.Require().NoError(err)
	s.Nil(result.Existing)
	s.Nil(result.ExistingMulligan)
	s.Equal(model.PaymentSpec{Amount: 500}, result.Prefill)
}

func (s *EngineTestSuite) TestSearchPrefillsCompForCompPlayer() {
	s.enrollPlayer("42", model.EntryTypeComp)

	result, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundOne)
	s.Require().NoError(err)
	s.Equal(model.PaymentSpec{Type: model.PaymentComp}, result.Prefill)
}

func (s *EngineTestSuite) TestSearchPrefillsFromExistingRegistration() {
	s.enrollPlayer("42", model.EntryTypePay)
	entry := s.seatedEntry("42", model.RoundOne, false)
	entry.PaymentType = model.PaymentCredit
	s.commitEntries(entry)

	result, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundOne)
	s.Require().NoError(err)
	s.Require().NotNil(result.Existing)
	s.Equal(model.PaymentCredit, result.Prefill.Type)
	s.Equal(500, result.Prefill.Amount)
}

func (s *EngineTestSuite) TestSearchRequiresRoundOneForLaterRounds() {
	s.enrollPlayer("42", model.EntryTypePay)

	_, err := s.engine.SearchPlayer(context.Background(), testEvent, "42", model.RoundTwo)
	s.ErrorIs(err, model.ErrNotEligible)
}

func (s *EngineTestSuite) TestSubmitRoundOneCash() {
	s.enrollPlayer("42", model.EntryTypePay)

	pending, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundOne, 500))
	s.Require().NoError(err)
	s.Require().Len(pending.Entries, 1)

	entry := pending.Entries[0]
	s.Equal(model.AccountNumber("00000000000042"), entry.AccountNumber)
	s.Equal("PAY $500", entry.EventType)
	s.False(entry.Seated())
	s.False(pending.RemoveMulligan)
	s.Equal(s.clock.Now(), entry.RegisteredAt)

	// nothing hits the ledger until seating confirms
	regs, err := s.store.GetRegistrations(context.Background(), testEvent)
	s.Require().NoError(err)
	s.Empty(regs)
}

func (s *EngineTestSuite) TestSubmitWithMulligan() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := s.cashRequest("42", model.RoundOne, 500)
	req.Mulligan = &model.PaymentSpec{Type: model.PaymentCash, Amount: 100}

	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Require().Len(pending.Entries, 2)
	s.False(pending.Entries[0].IsMulligan)
	s.True(pending.Entries[1].IsMulligan)
	s.Equal("Mulligan $100", pending.Entries[1].EventType)
	s.NotEqual(pending.Entries[0].ID, pending.Entries[1].ID)
}

func (s *EngineTestSuite) TestSubmitDuplicateRoundOneRejected() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(s.seatedEntry("42", model.RoundOne, false))

	_, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundOne, 500))
	s.ErrorIs(err, model.ErrAlreadyRegistered)
}

func (s *EngineTestSuite) TestSubmitDuplicateAllowedAsUpdate() {
	s.enrollPlayer("42", model.EntryTypePay)
	existing := s.seatedEntry("42", model.RoundOne, false)
	s.commitEntries(existing)

	req := s.cashRequest("42", model.RoundOne, 500)
	req.Update = true

	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Require().Len(pending.Entries, 1)
	// an update keeps the ledger identity of the record it replaces
	s.Equal(existing.ID, pending.Entries[0].ID)
}

func (s *EngineTestSuite) TestSubmitDuplicateAllowedWhenAddingMulligan() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(s.seatedEntry("42", model.RoundOne, false))

	req := s.cashRequest("42", model.RoundOne, 500)
	req.Mulligan = &model.PaymentSpec{Type: model.PaymentCash, Amount: 100}

	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Len(pending.Entries, 2)
}

func (s *EngineTestSuite) TestSubmitDroppingMulliganSetsRemoval() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(
		s.seatedEntry("42", model.RoundOne, false),
		s.seatedEntry("42", model.RoundOne, true),
	)

	req := s.cashRequest("42", model.RoundOne, 500)
	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.True(pending.RemoveMulligan)
	s.Len(pending.Entries, 1)
}

func (s *EngineTestSuite) TestSubmitRebuyRequiresRoundOne() {
	s.enrollPlayer("42", model.EntryTypePay)

	_, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundRebuyOne, 500))
	s.ErrorIs(err, model.ErrNotEligible)
}

func (s *EngineTestSuite) TestSubmitSecondRebuyRequiresFirst() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(s.seatedEntry("42", model.RoundOne, false))

	_, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundRebuyTwo, 500))
	s.ErrorIs(err, model.ErrNotEligible)

	s.commitEntries(s.seatedEntry("42", model.RoundRebuyOne, false))

	_, err = s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundRebuyTwo, 500))
	s.NoError(err)
}

func (s *EngineTestSuite) TestSubmitZeroCostCheckIn() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(s.seatedEntry("42", model.RoundOne, false))

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundTwo,
		TimeSlot:      2,
	}
	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("Check-In", pending.Entries[0].EventType)
	s.Equal(0, pending.Entries[0].PaymentAmount)
}

func (s *EngineTestSuite) TestSubmitZeroCostRejectsPayment() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(s.seatedEntry("42", model.RoundOne, false))

	req := s.cashRequest("42", model.RoundTwo, 500)
	req.TimeSlot = 2
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrPaymentMismatch)
}

func (s *EngineTestSuite) TestSubmitCompForcesZeroAmount() {
	s.enrollPlayer("42", model.EntryTypeComp)

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundOne,
		TimeSlot:      1,
		Payment:       model.PaymentSpec{Type: model.PaymentComp, Amount: 500},
	}
	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(0, pending.Entries[0].PaymentAmount)
	s.Equal("COMP", pending.Entries[0].EventType)
}

func (s *EngineTestSuite) TestSubmitPaymentMismatch() {
	s.enrollPlayer("42", model.EntryTypePay)

	_, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundOne, 400))
	s.ErrorIs(err, model.ErrPaymentMismatch)
}

func (s *EngineTestSuite) TestSubmitMissingPaymentType() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundOne,
		TimeSlot:      1,
		Payment:       model.PaymentSpec{Amount: 500},
	}
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrPaymentTypeRequired)
}

func (s *EngineTestSuite) TestSubmitSplitPayment() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundOne,
		TimeSlot:      1,
		Payment: model.PaymentSpec{
			Type:        model.PaymentCash,
			Amount:      300,
			SplitType:   model.PaymentCredit,
			SplitAmount: 200,
		},
	}
	pending, err := s.engine.SubmitRegistration(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(300, pending.Entries[0].PaymentAmount)
	s.Equal(model.PaymentCredit, pending.Entries[0].PaymentType2)
	s.Equal(200, pending.Entries[0].PaymentAmount2)
}

func (s *EngineTestSuite) TestSubmitSplitSameTypesRejected() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundOne,
		TimeSlot:      1,
		Payment: model.PaymentSpec{
			Type:        model.PaymentCash,
			Amount:      250,
			SplitType:   model.PaymentCash,
			SplitAmount: 250,
		},
	}
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrSplitTypesSame)
}

func (s *EngineTestSuite) TestSubmitSplitNonPositiveHalfRejected() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := SubmitRequest{
		EventName:     testEvent,
		AccountNumber: "42",
		Round:         model.RoundOne,
		TimeSlot:      1,
		Payment: model.PaymentSpec{
			Type:        model.PaymentCash,
			Amount:      500,
			SplitType:   model.PaymentCredit,
			SplitAmount: 0,
		},
	}
	// SplitType set with a zero amount marks this as a malformed split
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrSplitAmountInvalid)
}

func (s *EngineTestSuite) TestSubmitInvalidTimeSlot() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := s.cashRequest("42", model.RoundOne, 500)
	req.TimeSlot = 0
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrInvalidTimeSlot)
}

func (s *EngineTestSuite) TestSubmitInvalidRound() {
	s.enrollPlayer("42", model.EntryTypePay)

	req := s.cashRequest("42", model.Round("round9"), 500)
	_, err := s.engine.SubmitRegistration(context.Background(), req)
	s.ErrorIs(err, model.ErrInvalidRound)
}

func (s *EngineTestSuite) TestSubmitCustomTournamentCosts() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.Require().NoError(s.store.SaveTournament(context.Background(), &model.Tournament{
		Name:         testEvent,
		EntryCost:    250,
		RebuyCost:    250,
		MulliganCost: 50,
	}))

	pending, err := s.engine.SubmitRegistration(context.Background(), s.cashRequest("42", model.RoundOne, 250))
	s.Require().NoError(err)
	s.Equal("PAY $250", pending.Entries[0].EventType)
}

func (s *EngineTestSuite) TestRegisterNewPlayer() {
	player := &model.Player{
		AccountNumber: "77",
		FirstName:     "Grace",
		LastName:      "Hopper",
	}
	submit := &SubmitRequest{
		TimeSlot: 1,
		Payment:  model.PaymentSpec{Type: model.PaymentCash, Amount: 500},
	}

	added, pending, err := s.engine.RegisterNewPlayer(context.Background(), testEvent, player, submit)
	s.Require().NoError(err)
	s.Equal(model.AccountNumber("00000000000077"), added.AccountNumber)
	s.Require().NotNil(pending)
	s.Equal(model.RoundOne, pending.Round)

	// the player is enrolled even before seating confirms
	players, err := s.store.GetPlayers(context.Background(), testEvent)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *EngineTestSuite) TestRegisterNewPlayerDuplicateAccount() {
	s.enrollPlayer("77", model.EntryTypePay)

	_, _, err := s.engine.RegisterNewPlayer(context.Background(), testEvent, &model.Player{
		AccountNumber: "77",
		FirstName:     "Grace",
	}, nil)
	s.ErrorIs(err, model.ErrDuplicateAccount)
}

func (s *EngineTestSuite) TestRoundHelpers() {
	s.enrollPlayer("42", model.EntryTypePay)
	s.commitEntries(
		s.seatedEntry("42", model.RoundOne, false),
		s.seatedEntry("42", model.RoundOne, true),
	)

	registered, err := s.engine.IsRegisteredForRound(context.Background(), testEvent, "42", model.RoundOne)
	s.Require().NoError(err)
	s.True(registered)

	registered, err = s.engine.IsRegisteredForRound(context.Background(), testEvent, "42", model.RoundTwo)
	s.Require().NoError(err)
	s.False(registered)

	hasMulligan, err := s.engine.PlayerHasMulligan(context.Background(), testEvent, "42", model.RoundOne)
	s.Require().NoError(err)
	s.True(hasMulligan)
}
