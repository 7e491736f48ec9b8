package services_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/contract/mocks"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

type GuessRelayTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mock        *mocks.MockGameContract
	mr          *miniredis.Miniredis
	redis       *services.RedisService
	broadcaster *recordingBroadcaster
	relay       *services.GuessRelay
	ctx         context.Context
}

func (s *GuessRelayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mock = mocks.NewMockGameContract(s.ctrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.redis = services.NewRedisServiceFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	facade := services.NewContractService(s.mock, nil)
	s.broadcaster = &recordingBroadcaster{}
	s.relay = services.NewGuessRelay(services.GuessRelayConfig{
		Contract:    facade,
		Locks:       s.redis,
		Winnings:    s.redis,
		Resolver:    &services.PrizeResolver{DisplayFeePercent: 5, Fees: facade},
		Broadcaster: s.broadcaster,
	})
	s.ctx = context.Background()
}

func (s *GuessRelayTestSuite) TearDownTest() {
	s.redis.Close()
	s.mr.Close()
}

func TestGuessRelayTestSuite(t *testing.T) {
	suite.Run(t, new(GuessRelayTestSuite))
}

func (s *GuessRelayTestSuite) signedGuess(from common.Address, gameID int64, value *big.Int) *contract.SignedCall {
	return &contract.SignedCall{
		Tx:     types.NewTx(&types.LegacyTx{Value: value}),
		From:   from,
		Method: "submitGuess",
		Args:   []interface{}{big.NewInt(gameID), "cola"},
	}
}

func (s *GuessRelayTestSuite) TestPrepareRejectsInactiveGame() {
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(wonGame(7, 1, testPlayer), nil)

	_, err := s.relay.Prepare(s.ctx, 7, "cola")
	s.ErrorIs(err, services.ErrGameNotActive)
}

func (s *GuessRelayTestSuite) TestPreparePacksEntryFee() {
	want := &contract.CallData{Value: testEntryFee}
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_000_000_000_000_000), nil)
	s.mock.EXPECT().PackSubmitGuess(uint64(7), "Cola", testEntryFee).Return(want, nil)

	got, err := s.relay.Prepare(s.ctx, 7, "Cola")
	s.Require().NoError(err)
	s.Same(want, got)
}

func (s *GuessRelayTestSuite) TestSubmitRejectsOtherSigner() {
	raw := []byte{0x01}
	other := common.HexToAddress("0x9999999999999999999999999999999999999999")
	s.mock.EXPECT().DecodeSignedTx(raw).Return(s.signedGuess(other, 7, testEntryFee), nil)

	_, err := s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.ErrorIs(err, services.ErrSignerMismatch)
}

func (s *GuessRelayTestSuite) TestSubmitRejectsOtherGame() {
	raw := []byte{0x01}
	s.mock.EXPECT().DecodeSignedTx(raw).Return(s.signedGuess(testPlayer, 8, testEntryFee), nil)

	_, err := s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.ErrorIs(err, services.ErrGameMismatch)
}

func (s *GuessRelayTestSuite) TestSubmitRejectsLowValue() {
	raw := []byte{0x01}
	s.mock.EXPECT().DecodeSignedTx(raw).Return(s.signedGuess(testPlayer, 7, big.NewInt(1)), nil)
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_000_000_000_000_000), nil)

	_, err := s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.ErrorIs(err, services.ErrInsufficientFee)
}

func (s *GuessRelayTestSuite) TestSubmitWhileLocked() {
	raw := []byte{0x01}
	s.mock.EXPECT().DecodeSignedTx(raw).Return(s.signedGuess(testPlayer, 7, testEntryFee), nil)
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_000_000_000_000_000), nil)

	_, ok, err := s.redis.AcquireGuessLock(s.ctx, testPlayer.Hex(), 7, services.TTLGuessLock)
	s.Require().NoError(err)
	s.Require().True(ok)

	_, err = s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.ErrorIs(err, services.ErrGuessInFlight)
}

func (s *GuessRelayTestSuite) TestSubmitWinningGuess() {
	raw := []byte{0x01}
	call := s.signedGuess(testPlayer, 7, testEntryFee)

	s.mock.EXPECT().DecodeSignedTx(raw).Return(call, nil)
	gomock.InOrder(
		s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_000_000_000_000_000), nil),
		s.mock.EXPECT().RelaySignedTx(gomock.Any(), call, uint64(contract.GuessConfirmations)).Return(txResult(2), nil),
		s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(wonGame(7, 2_000_000_000_000_000, testPlayer), nil),
	)
	s.mock.EXPECT().GetPlatformFee(gomock.Any()).Return(uint64(5), nil)
	s.mock.EXPECT().GetPlayerStats(gomock.Any(), testPlayer).Return(&contract.PlayerStats{
		GamesPlayed:   1,
		TotalWinnings: big.NewInt(2_000_000_000_000_000),
	}, nil)

	result, err := s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.Require().NoError(err)
	s.True(result.Correct)
	s.Equal("0.0019", result.DisplayedPrize)
	s.Equal([]string{testPlayer.Hex()}, s.broadcaster.wins)

	entries, err := s.redis.GetLeaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("0.002", entries[0].TotalWinnings)

	// the lock is released afterwards
	_, ok, err := s.redis.AcquireGuessLock(s.ctx, testPlayer.Hex(), 7, services.TTLGuessLock)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *GuessRelayTestSuite) TestSubmitMissBroadcastsPot() {
	raw := []byte{0x01}
	call := s.signedGuess(testPlayer, 7, testEntryFee)

	s.mock.EXPECT().DecodeSignedTx(raw).Return(call, nil)
	gomock.InOrder(
		s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_000_000_000_000_000), nil),
		s.mock.EXPECT().RelaySignedTx(gomock.Any(), call, uint64(contract.GuessConfirmations)).Return(txResult(2), nil),
		s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(7)).Return(activeGame(7, 1_100_000_000_000_000), nil),
	)

	result, err := s.relay.Submit(s.ctx, testPlayer, 7, raw)
	s.Require().NoError(err)
	s.False(result.Correct)
	s.Equal(services.MessageIncorrect, result.Message)
	s.Equal([]string{"0.0011"}, s.broadcaster.updates)
}
