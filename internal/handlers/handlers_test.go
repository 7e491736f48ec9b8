package handlers_test

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"math/big"
	mrand "math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/contract/mocks"
	"github.com/chevoisiatesalvati/guess-what/internal/handlers"
	"github.com/chevoisiatesalvati/guess-what/internal/middleware"
	"github.com/chevoisiatesalvati/guess-what/internal/network"
	"github.com/chevoisiatesalvati/guess-what/internal/og"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

var (
	testPlayer   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testEntryFee = big.NewInt(100_000_000_000_000)
)

func activeGame(id uint64) *contract.GameInfo {
	return &contract.GameInfo{
		GameID:           id,
		TopWord:          "Coca",
		MiddleWordLength: 4,
		BottomWord:       "Pepsi",
		EntryFee:         new(big.Int).Set(testEntryFee),
		TotalPrize:       big.NewInt(300_000_000_000_000),
		BasePrizeAmount:  big.NewInt(1_000_000_000_000_000),
		StartTime:        time.Unix(1_700_000_000, 0),
		IsActive:         true,
	}
}

type HandlersTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mock     *mocks.MockGameContract
	mr       *miniredis.Miniredis
	redis    *services.RedisService
	jwt      *services.JWTService
	contract *services.ContractService
	games    *handlers.GameHandler
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mock = mocks.NewMockGameContract(s.ctrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.redis = services.NewRedisServiceFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	s.jwt = services.NewJWTService(&config.Config{JWTSecret: "test-secret"})

	s.contract = services.NewContractService(s.mock, nil)
	relay := services.NewGuessRelay(services.GuessRelayConfig{
		Contract: s.contract,
		Locks:    s.redis,
		Winnings: s.redis,
	})
	s.games = handlers.NewGameHandler(s.contract, relay, s.redis, network.BaseSepolia, nil)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.redis.Close()
	s.mr.Close()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// asUser stands in for the auth middleware.
func asUser(userID int64, address string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("session_id", "test-session")
		c.Set("address", address)
		c.Next()
	}
}

func (s *HandlersTestSuite) do(router http.Handler, method, path string, body interface{}, header ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *HandlersTestSuite) gameRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", middlewares...)
	api.GET("/games/active/count", s.games.GetActiveCount)
	api.GET("/games/random", s.games.GetRandomGame)
	api.GET("/games/:id", s.games.GetGame)
	api.GET("/games/:id/calldata", s.games.GetGuessCallData)
	api.POST("/games/:id/guesses", s.games.SubmitGuess)
	api.GET("/players/:address/stats", s.games.GetPlayerStats)
	api.GET("/me/stats", s.games.GetMyStats)
	api.GET("/leaderboard", s.games.GetLeaderboard)
	return r
}

func (s *HandlersTestSuite) TestErrorStatusMapping() {
	r := gin.New()
	r.GET("/err/:n", func(c *gin.Context) {
		errs := []error{
			services.ErrWalletNotConnected,
			services.ErrAccessDenied,
			services.ErrNoActiveGames,
			fmt.Errorf("failed to submit guess: %w", services.ErrGuessInFlight),
			contract.ErrForeignTransaction,
			errors.New("rpc down"),
		}
		n, _ := strconv.Atoi(c.Param("n"))
		handlers.RespondErrorForTest(c, "boom", errs[n])
	})

	want := []int{401, 403, 404, 409, 400, 500}
	for i, status := range want {
		w := s.do(r, http.MethodGet, "/err/"+strconv.Itoa(i), nil)
		s.Equal(status, w.Code, "error %d", i)
		body := s.decode(w)
		s.Equal("boom", body["error"])
		s.NotEmpty(body["details"])
	}
}

func (s *HandlersTestSuite) TestRandomGameWithNoActiveGames() {
	s.mock.EXPECT().GetActiveGamesCount(gomock.Any()).Return(uint64(0), nil)
	s.mock.EXPECT().GetRandomActiveGame(gomock.Any()).Times(0)

	w := s.do(s.gameRouter(), http.MethodGet, "/api/games/random", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestGetGame() {
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(3)).Return(activeGame(3), nil)

	w := s.do(s.gameRouter(), http.MethodGet, "/api/games/3", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal(true, body["available"])
	game := body["game"].(map[string]interface{})
	s.Equal("3", game["id"])
	s.Equal("Coca", game["top_word"])
	s.Equal("0.0001", game["entry_fee"])
}

func (s *HandlersTestSuite) TestGetUnknownGame() {
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(99)).Return(&contract.GameInfo{GameID: 99, EntryFee: new(big.Int)}, nil)

	w := s.do(s.gameRouter(), http.MethodGet, "/api/games/99", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(s.gameRouter(), http.MethodGet, "/api/games/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestGuessCallData() {
	router := s.gameRouter(asUser(1, testPlayer.Hex()))

	w := s.do(router, http.MethodGet, "/api/games/3/calldata?guess=%20%20", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	contractAddr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	s.mock.EXPECT().GetGameInfo(gomock.Any(), uint64(3)).Return(activeGame(3), nil)
	s.mock.EXPECT().PackSubmitGuess(uint64(3), "Cola", testEntryFee).
		Return(&contract.CallData{To: contractAddr, Data: []byte{0xde, 0xad}, Value: testEntryFee}, nil)

	w = s.do(router, http.MethodGet, "/api/games/3/calldata?guess=Cola", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	body := s.decode(w)
	s.Equal(contractAddr.Hex(), body["to"])
	s.Equal("0xdead", body["data"])
	s.Equal(testEntryFee.String(), body["value"])
	s.Equal(float64(network.BaseSepolia.ChainID), body["chain_id"])
}

func (s *HandlersTestSuite) TestSubmitGuessNeedsWallet() {
	router := s.gameRouter(asUser(1, ""))

	w := s.do(router, http.MethodPost, "/api/games/3/guesses", gin.H{"signed_tx": "0x01"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestSubmitGuessRejectsBadHex() {
	router := s.gameRouter(asUser(1, testPlayer.Hex()))

	w := s.do(router, http.MethodPost, "/api/games/3/guesses", gin.H{"signed_tx": "0xzz"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(router, http.MethodPost, "/api/games/3/guesses", gin.H{})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestSubmitGuessRateLimited() {
	router := s.gameRouter(asUser(1, testPlayer.Hex()))
	s.mock.EXPECT().DecodeSignedTx(gomock.Any()).
		Return(nil, contract.ErrForeignTransaction).
		Times(services.DefaultRateLimitGuesses)

	for i := 0; i < services.DefaultRateLimitGuesses; i++ {
		w := s.do(router, http.MethodPost, "/api/games/3/guesses", gin.H{"signed_tx": "0x01"})
		s.Equal(http.StatusBadRequest, w.Code)
	}

	w := s.do(router, http.MethodPost, "/api/games/3/guesses", gin.H{"signed_tx": "0x01"})
	s.Equal(http.StatusTooManyRequests, w.Code)
}

func (s *HandlersTestSuite) TestPlayerStatsAreCached() {
	s.mock.EXPECT().GetPlayerStats(gomock.Any(), testPlayer).Return(&contract.PlayerStats{
		GamesPlayed:         4,
		GuessesPlayed:       6,
		CorrectGuesses:      2,
		TotalWinnings:       big.NewInt(1_900_000_000_000_000),
		AccuracyBasisPoints: 5000,
	}, nil).Times(1)

	router := s.gameRouter()
	for i := 0; i < 2; i++ {
		w := s.do(router, http.MethodGet, "/api/players/"+testPlayer.Hex()+"/stats", nil)
		s.Require().Equal(http.StatusOK, w.Code)

		stats := s.decode(w)["stats"].(map[string]interface{})
		s.Equal(float64(4), stats["games_played"])
		s.Equal("0.0019", stats["total_winnings"])
		s.Equal(float64(50), stats["accuracy"])
	}

	w := s.do(router, http.MethodGet, "/api/players/not-an-address/stats", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestFailedStatsReadIsNotCached() {
	gomock.InOrder(
		s.mock.EXPECT().GetPlayerStats(gomock.Any(), testPlayer).Return(nil, errors.New("rpc unavailable")),
		s.mock.EXPECT().GetPlayerStats(gomock.Any(), testPlayer).Return(&contract.PlayerStats{
			GamesPlayed:   1,
			TotalWinnings: big.NewInt(0),
		}, nil),
	)

	router := s.gameRouter()
	path := "/api/players/" + testPlayer.Hex() + "/stats"

	w := s.do(router, http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(0), s.decode(w)["stats"].(map[string]interface{})["games_played"])

	// a successful read elsewhere clears the shared facade error
	s.mock.EXPECT().GetActiveGamesCount(gomock.Any()).Return(uint64(0), nil)
	s.contract.GetActiveGamesCount(context.Background())
	s.Empty(s.contract.State().Error)

	for i := 0; i < 2; i++ {
		w = s.do(router, http.MethodGet, path, nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.Equal(float64(1), s.decode(w)["stats"].(map[string]interface{})["games_played"])
	}
}

func (s *HandlersTestSuite) TestMyStatsNeedsWallet() {
	w := s.do(s.gameRouter(asUser(1, "")), http.MethodGet, "/api/me/stats", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestLeaderboard() {
	ctx := context.Background()
	s.Require().NoError(s.redis.RecordWinnings(ctx, testPlayer.Hex(), big.NewInt(2_000_000_000_000_000)))
	s.Require().NoError(s.redis.RecordWinnings(ctx, "0x3333333333333333333333333333333333333333", big.NewInt(500_000_000_000_000)))

	w := s.do(s.gameRouter(), http.MethodGet, "/api/leaderboard?limit=5", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	entries := s.decode(w)["entries"].([]interface{})
	s.Require().Len(entries, 2)
	first := entries[0].(map[string]interface{})
	s.Equal(float64(1), first["rank"])
	s.Equal("0.002", first["total_winnings"])
}

func (s *HandlersTestSuite) TestAdminWithoutRolesIsDenied() {
	admin := handlers.NewAdminHandler(services.NewAdminService(s.contract, nil, nil), network.BaseSepolia, nil)
	s.mock.EXPECT().IsOwner(gomock.Any(), testPlayer).Return(false, nil).AnyTimes()
	s.mock.EXPECT().IsAdmin(gomock.Any(), testPlayer).Return(false, nil).AnyTimes()

	r := gin.New()
	api := r.Group("/api/admin", asUser(1, testPlayer.Hex()))
	api.GET("/access", admin.GetAccess)
	api.POST("/games/calldata", admin.CreateGameCallData)

	w := s.do(r, http.MethodGet, "/api/admin/access", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	access := s.decode(w)["access"].(map[string]interface{})
	s.Equal(false, access["can_create_games"])
	s.Equal(false, access["can_manage_admins"])
	controls := s.decode(w)["controls"].([]interface{})
	s.Len(controls, 7)
	for _, c := range controls {
		s.Equal(false, c.(map[string]interface{})["enabled"])
	}

	w = s.do(r, http.MethodPost, "/api/admin/games/calldata", gin.H{
		"top_word":    "Coca",
		"middle_word": "Cola",
		"bottom_word": "Pepsi",
		"entry_fee":   "0.0001",
	})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestAdminCreateGameCallData() {
	admin := handlers.NewAdminHandler(services.NewAdminService(s.contract, nil, nil), network.BaseSepolia, nil)
	s.mock.EXPECT().IsOwner(gomock.Any(), testPlayer).Return(false, nil)
	s.mock.EXPECT().IsAdmin(gomock.Any(), testPlayer).Return(true, nil)
	s.mock.EXPECT().PackCreateGame(gomock.Any()).DoAndReturn(func(in *contract.CreateGameInput) (*contract.CallData, error) {
		s.Equal(words.Hash("cola"), in.MiddleWordHash)
		return &contract.CallData{To: network.BaseSepolia.ContractAddress, Data: []byte{0x01}}, nil
	})

	r := gin.New()
	r.POST("/api/admin/games/calldata", asUser(1, testPlayer.Hex()), admin.CreateGameCallData)

	w := s.do(r, http.MethodPost, "/api/admin/games/calldata", gin.H{
		"top_word":    "Coca",
		"middle_word": " COLA ",
		"bottom_word": "Pepsi",
		"entry_fee":   "0.0001",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("0", s.decode(w)["value"])
}

func (s *HandlersTestSuite) TestSignInAndSession() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	verifier := services.NewQuickAuthVerifierWithKey(pub, "https://auth.farcaster.xyz", "guesswhat.example")
	auth := handlers.NewAuthHandler(s.redis, s.jwt, verifier, false, nil)
	users := handlers.NewUserHandler(s.redis)

	r := gin.New()
	r.POST("/auth/sign-in", auth.SignIn)
	protected := r.Group("/api", middleware.AuthMiddleware(s.jwt))
	protected.GET("/me", users.GetCurrentUser)
	protected.POST("/logout", users.Logout)

	token := func(sub string) string {
		t, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
			Issuer:    "https://auth.farcaster.xyz",
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"guesswhat.example"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(priv)
		s.Require().NoError(err)
		return t
	}

	w := s.do(r, http.MethodPost, "/auth/sign-in", gin.H{"fid": 42, "token": token("7")})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(r, http.MethodPost, "/auth/sign-in", gin.H{
		"fid":      42,
		"token":    token("42"),
		"address":  testPlayer.Hex(),
		"username": "alice",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	session := s.decode(w)["token"].(string)

	claims, err := s.jwt.ValidateToken(session)
	s.Require().NoError(err)
	s.Equal(int64(42), claims.UserID)
	s.Equal(testPlayer.Hex(), claims.Address)

	w = s.do(r, http.MethodGet, "/api/me", nil, "Authorization", "Bearer "+session)
	s.Require().Equal(http.StatusOK, w.Code)
	user := s.decode(w)["user"].(map[string]interface{})
	s.Equal("alice", user["username"])

	w = s.do(r, http.MethodPost, "/api/logout", nil, "Authorization", "Bearer "+session)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(r, http.MethodGet, "/api/me", nil, "Authorization", "Bearer "+session)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(r, http.MethodGet, "/api/me", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestSignInWithoutVerifier() {
	r := gin.New()
	r.POST("/auth/sign-in", handlers.NewAuthHandler(s.redis, s.jwt, nil, false, nil).SignIn)
	w := s.do(r, http.MethodPost, "/auth/sign-in", gin.H{"fid": 42, "token": "x"})
	s.Equal(http.StatusUnauthorized, w.Code)

	r = gin.New()
	r.POST("/auth/sign-in", handlers.NewAuthHandler(s.redis, s.jwt, nil, true, nil).SignIn)
	w = s.do(r, http.MethodPost, "/auth/sign-in", gin.H{"fid": 42, "token": "x"})
	s.Equal(http.StatusOK, w.Code)

	w = s.do(r, http.MethodPost, "/auth/sign-in", gin.H{"fid": 42, "token": "x", "address": "nope"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestOGGameWin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.NewOGHandler(sharing.New("https://guesswhat.example"), sharing.AccountAssociation{}, nil)

	r := gin.New()
	r.GET("/api/og/game-win", h.GameWin)

	req := httptest.NewRequest(http.MethodGet, "/api/og/game-win?gameId=7&prize=0.0019&player="+testPlayer.Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != og.Width || img.Bounds().Dy() != og.Height {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestManifestAndShareLinks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.NewOGHandler(sharing.New("http://localhost:3000"), sharing.AccountAssociation{Header: "h"}, nil)

	r := gin.New()
	r.GET("/.well-known/farcaster.json", h.Manifest)
	r.GET("/api/share/:kind", h.ShareLinks)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/.well-known/farcaster.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("manifest status = %d", w.Code)
	}
	var manifest sharing.Manifest
	if err := json.Unmarshal(w.Body.Bytes(), &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if manifest.AccountAssociation.Header != "h" {
		t.Fatalf("account association not served: %+v", manifest.AccountAssociation)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/share/game_win?gameId=7&prize=0.5", nil))
	var links sharing.Links
	if err := json.Unmarshal(w.Body.Bytes(), &links); err != nil {
		t.Fatalf("decode links: %v", err)
	}
	if links.URL != "http://localhost:3000/game?win=7&prize=0.5" {
		t.Fatalf("share url = %q", links.URL)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/share/selfie", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown kind status = %d", w.Code)
	}
}

func (s *HandlersTestSuite) TestLocalPlayFlow() {
	play := handlers.NewPlayHandler(func() *services.LocalBackend {
		return services.NewLocalBackend(services.LocalBackendConfig{
			EntryFee: big.NewInt(1_000_000_000_000_000),
			Rand:     mrand.New(mrand.NewSource(1)),
			Pick: func(*mrand.Rand, string) words.Triple {
				return words.Triple{Top: "Coca", Middle: "Cola", Bottom: "Pepsi"}
			},
		})
	}, &services.PrizeResolver{DisplayFeePercent: 5}, nil)

	r := gin.New()
	api := r.Group("/api/play", asUser(7, ""))
	api.GET("", play.GetView)
	api.POST("/start", play.Start)
	api.POST("/guess", play.Guess)
	api.GET("/stats", play.GetStats)

	w := s.do(r, http.MethodGet, "/api/play", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("loading", s.decode(w)["state"])

	w = s.do(r, http.MethodPost, "/api/play/start", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	view := s.decode(w)
	s.Equal("playing", view["state"])
	s.Equal("Coca", view["game"].(map[string]interface{})["top_word"])

	w = s.do(r, http.MethodPost, "/api/play/guess", gin.H{"guess": "soda"})
	s.Require().Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(false, body["result"].(map[string]interface{})["correct"])
	s.Equal("", body["view"].(map[string]interface{})["input"])

	w = s.do(r, http.MethodPost, "/api/play/guess", gin.H{"guess": "COLA"})
	s.Require().Equal(http.StatusOK, w.Code)
	body = s.decode(w)
	result := body["result"].(map[string]interface{})
	s.Equal(true, result["correct"])
	s.Equal("0.002", result["total_prize"])
	s.Equal("0.0019", result["displayed_prize"])
	s.Equal("won", body["view"].(map[string]interface{})["state"])

	w = s.do(r, http.MethodPost, "/api/play/guess", gin.H{"guess": "cola"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(r, http.MethodGet, "/api/play/stats", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	stats := s.decode(w)["stats"].(map[string]interface{})
	s.Equal(float64(1), stats["correct_guesses"])
}
