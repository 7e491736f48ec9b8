package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{client: client}, nil
}

func NewRedisServiceFromClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

func (s *RedisService) StoreUserSession(ctx context.Context, session *models.UserSession, expiry time.Duration) error {
	key := fmt.Sprintf(KeyUserSession, session.ID, session.SessionID)

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, expiry).Err()
}

func (s *RedisService) GetUserSession(ctx context.Context, userID int64, sessionID string) (*models.UserSession, error) {
	key := fmt.Sprintf(KeyUserSession, userID, sessionID)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var session models.UserSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}

	session.LastAccessed = time.Now()
	updatedData, _ := json.Marshal(session)
	s.client.Set(ctx, key, updatedData, TTLUserSession)

	return &session, nil
}

func (s *RedisService) DeleteUserSession(ctx context.Context, userID int64, sessionID string) error {
	key := fmt.Sprintf(KeyUserSession, userID, sessionID)
	return s.client.Del(ctx, key).Err()
}

// StoreUser saves the profile and, when the user has a wallet, the name the
// leaderboard shows for it.
func (s *RedisService) StoreUser(ctx context.Context, user *models.User) error {
	key := fmt.Sprintf(KeyUserInfo, user.FID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, data, TTLUserInfo).Err(); err != nil {
		return err
	}

	if user.Address != "" && user.Username != "" {
		return s.client.HSet(ctx, KeyLeaderboardNames, strings.ToLower(user.Address), user.Username).Err()
	}
	return nil
}

func (s *RedisService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	key := fmt.Sprintf(KeyUserInfo, userID)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = json.Unmarshal([]byte(data), &user)
	return &user, err
}

func (s *RedisService) CachePlayerStats(ctx context.Context, stats *models.PlayerStats) error {
	key := fmt.Sprintf(KeyPlayerStats, strings.ToLower(stats.Address))

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %v", err)
	}

	return s.client.Set(ctx, key, data, TTLPlayerStats).Err()
}

// GetCachedPlayerStats returns nil without an error on a cache miss.
func (s *RedisService) GetCachedPlayerStats(ctx context.Context, address string) (*models.PlayerStats, error) {
	key := fmt.Sprintf(KeyPlayerStats, strings.ToLower(address))

	data, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %v", err)
	}

	var stats models.PlayerStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player stats: %v", err)
	}
	return &stats, nil
}

func (s *RedisService) InvalidatePlayerStats(ctx context.Context, address string) error {
	return s.client.Del(ctx, fmt.Sprintf(KeyPlayerStats, strings.ToLower(address))).Err()
}

// RecordWinnings sets a player's lifetime winnings. The sorted set ranks by
// an approximate ETH score; the exact wei amount is kept alongside.
func (s *RedisService) RecordWinnings(ctx context.Context, address string, totalWinnings *big.Int) error {
	member := strings.ToLower(address)
	score, _ := new(big.Float).Quo(new(big.Float).SetInt(totalWinnings), big.NewFloat(1e18)).Float64()

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, KeyLeaderboard, redis.Z{Score: score, Member: member})
	pipe.HSet(ctx, KeyLeaderboardWinnings, member, totalWinnings.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record winnings: %v", err)
	}
	return nil
}

func (s *RedisService) GetLeaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > MaxLeaderboardSize {
		limit = DefaultLeaderboardSize
	}

	members, err := s.client.ZRevRange(ctx, KeyLeaderboard, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %v", err)
	}
	if len(members) == 0 {
		return []models.LeaderboardEntry{}, nil
	}

	amounts, err := s.client.HMGet(ctx, KeyLeaderboardWinnings, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard winnings: %v", err)
	}
	names, err := s.client.HMGet(ctx, KeyLeaderboardNames, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard names: %v", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(members))
	for i, member := range members {
		entry := models.LeaderboardEntry{
			Rank:          i + 1,
			Address:       member,
			TotalWinnings: "0",
		}
		if raw, ok := amounts[i].(string); ok {
			if wei, ok := new(big.Int).SetString(raw, 10); ok {
				entry.TotalWinnings = units.FormatEther(wei)
			}
		}
		if name, ok := names[i].(string); ok {
			entry.Username = name
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *RedisService) CheckRateLimit(ctx context.Context, userID int64, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, userID, action)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		s.client.Expire(ctx, key, window)
	}

	return count <= int64(limit), nil
}

// AcquireGuessLock stops a player from relaying two guesses on the same
// game at once. The returned token releases the lock.
func (s *RedisService) AcquireGuessLock(ctx context.Context, player string, gameID uint64, ttl time.Duration) (string, bool, error) {
	key := fmt.Sprintf(KeyGuessLock, strings.ToLower(player), gameID)
	token := uuid.NewString()

	ok, err := s.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire guess lock: %v", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

var releaseLockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

func (s *RedisService) ReleaseGuessLock(ctx context.Context, player string, gameID uint64, token string) error {
	key := fmt.Sprintf(KeyGuessLock, strings.ToLower(player), gameID)
	return releaseLockScript.Run(ctx, s.client, []string{key}, token).Err()
}
