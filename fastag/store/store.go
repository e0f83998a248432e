// Package store is the small persistence collaborator the client leans
// on: it carries the OTP-flow correlation pair between screens and caches
// wallet balances. It is deliberately a key-value surface; form
// submissions and the rest of the app data live elsewhere.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/config"
)

// OTPSession is the requestId/sessionId pair minted on sendOtp. It must
// survive until createCustomer so the flow keeps session continuity with
// the aggregator.
type OTPSession struct {
	RequestID string `json:"requestId"`
	SessionID string `json:"sessionId"`
}

// WalletBalance is the cached balance for a tag wallet.
type WalletBalance struct {
	WalletID  string    `json:"walletId"`
	Amount    float64   `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SecureStore is what the API flows require from persistence.
type SecureStore interface {
	SaveOTPSession(ctx context.Context, mobile string, session OTPSession) error
	OTPSession(ctx context.Context, mobile string) (OTPSession, bool, error)
	SaveWalletBalance(ctx context.Context, balance WalletBalance) error
	WalletBalance(ctx context.Context, walletID string) (WalletBalance, bool, error)
	// RecordRecharge persists a top-up marker and returns its receipt id.
	RecordRecharge(ctx context.Context, walletID string, amount float64) (string, error)
}

// otpSessionTTL matches the aggregator's OTP validity window.
const otpSessionTTL = 5 * time.Minute

type redisStore struct {
	client *goredis.Client
}

// New connects a Redis-backed SecureStore.
func New(cfg *config.Config) SecureStore {
	return NewWithClient(goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}))
}

// NewWithClient wraps an existing Redis client (tests).
func NewWithClient(client *goredis.Client) SecureStore {
	return &redisStore{client: client}
}

func (s *redisStore) SaveOTPSession(ctx context.Context, mobile string, session OTPSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, "otp:"+mobile, raw, otpSessionTTL).Err()
}

func (s *redisStore) OTPSession(ctx context.Context, mobile string) (OTPSession, bool, error) {
	raw, err := s.client.Get(ctx, "otp:"+mobile).Result()
	if err == goredis.Nil {
		return OTPSession{}, false, nil
	}
	if err != nil {
		return OTPSession{}, false, err
	}
	var session OTPSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return OTPSession{}, false, err
	}
	return session, true, nil
}

func (s *redisStore) SaveWalletBalance(ctx context.Context, balance WalletBalance) error {
	raw, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, "wallet:"+balance.WalletID, raw, 0).Err()
}

func (s *redisStore) WalletBalance(ctx context.Context, walletID string) (WalletBalance, bool, error) {
	raw, err := s.client.Get(ctx, "wallet:"+walletID).Result()
	if err == goredis.Nil {
		return WalletBalance{}, false, nil
	}
	if err != nil {
		return WalletBalance{}, false, err
	}
	var balance WalletBalance
	if err := json.Unmarshal([]byte(raw), &balance); err != nil {
		return WalletBalance{}, false, err
	}
	return balance, true, nil
}

func (s *redisStore) RecordRecharge(ctx context.Context, walletID string, amount float64) (string, error) {
	receipt := uuid.NewString()
	entry, err := json.Marshal(map[string]any{
		"receipt":  receipt,
		"walletId": walletID,
		"amount":   amount,
		"at":       time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	if err := s.client.RPush(ctx, "recharges:"+walletID, entry).Err(); err != nil {
		return "", err
	}
	return receipt, nil
}
