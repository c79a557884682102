// Package timelock holds a token balance for one beneficiary and releases it
// only after a fixed timestamp. Each lock is created once by the sale's
// finalizer; release is its sole state transition.
package timelock

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/golang/protobuf/ptypes/timestamp"

	"github.com/dappuniversity/ico-irl/token"
)

// TransactionContext is the slice of the Kalp SDK transaction context this
// package consumes.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	SetEvent(name string, payload []byte) error
	GetTxTimestamp() (*timestamp.Timestamp, error)
}

const (
	lockKeyPrefix     = "timelock"
	accountKeyPrefix  = "lock"
	lockCreatedEvent  = "TimelockCreated"
	lockReleasedEvent = "TimelockReleased"
)

// Lock is the stored form of one vesting lock.
type Lock struct {
	Beneficiary string `json:"beneficiary"`
	ReleaseTime uint64 `json:"releaseTime"`
	Released    bool   `json:"released"`
}

// Account returns the token-ledger account a lock holds its balance under.
func Account(lockID string) string {
	return fmt.Sprintf("%s_%s", accountKeyPrefix, lockID)
}

func Get(ctx TransactionContext, lockID string) (*Lock, error) {
	lockKey := fmt.Sprintf("%s_%s", lockKeyPrefix, lockID)
	lockAsBytes, err := ctx.GetState(lockKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get timelock with Key %s: %v", lockKey, err)
	}
	if lockAsBytes == nil {
		return nil, fmt.Errorf("%w: %s", ErrLockNotFound, lockID)
	}

	var lock Lock
	err = json.Unmarshal(lockAsBytes, &lock)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal timelock %s: %v", lockID, err)
	}

	return &lock, nil
}

func setLock(ctx TransactionContext, lockID string, lock *Lock) error {
	lockKey := fmt.Sprintf("%s_%s", lockKeyPrefix, lockID)
	lockAsBytes, err := json.Marshal(lock)
	if err != nil {
		return fmt.Errorf("failed to marshal timelock %s: %v", lockID, err)
	}

	err = ctx.PutStateWithoutKYC(lockKey, lockAsBytes)
	if err != nil {
		return fmt.Errorf("failed to set timelock %s: %v", lockID, err)
	}

	return nil
}

// Create stores a new lock. Lock IDs are write-once.
func Create(ctx TransactionContext, lockID, beneficiary string, releaseTime uint64) error {
	lockKey := fmt.Sprintf("%s_%s", lockKeyPrefix, lockID)
	existing, err := ctx.GetState(lockKey)
	if err != nil {
		return fmt.Errorf("failed to get timelock with Key %s: %v", lockKey, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrLockAlreadyExists, lockID)
	}
	if releaseTime == 0 {
		return ErrReleaseTimeZero
	}

	lock := &Lock{
		Beneficiary: beneficiary,
		ReleaseTime: releaseTime,
	}
	if err := setLock(ctx, lockID, lock); err != nil {
		return err
	}

	created := struct {
		LockID      string `json:"lockId"`
		Beneficiary string `json:"beneficiary"`
		ReleaseTime uint64 `json:"releaseTime"`
	}{LockID: lockID, Beneficiary: beneficiary, ReleaseTime: releaseTime}

	createdJSON, err := json.Marshal(created)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(lockCreatedEvent, createdJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

// Release transfers the full held balance to the lock's beneficiary. It fails
// before the release time and succeeds at most once.
func Release(ctx TransactionContext, lockID string) (*big.Int, error) {
	lock, err := Get(ctx, lockID)
	if err != nil {
		return nil, err
	}

	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction timestamp: %v", err)
	}
	if uint64(ts.Seconds) < lock.ReleaseTime {
		return nil, fmt.Errorf("%w: lock %s releases at %d", ErrReleaseTooEarly, lockID, lock.ReleaseTime)
	}

	if lock.Released {
		return nil, fmt.Errorf("%w: %s", ErrNothingToRelease, lockID)
	}

	balance, err := token.BalanceOf(ctx, Account(lockID))
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNothingToRelease, lockID)
	}

	if err := token.Transfer(ctx, Account(lockID), lock.Beneficiary, balance); err != nil {
		return nil, err
	}

	lock.Released = true
	if err := setLock(ctx, lockID, lock); err != nil {
		return nil, err
	}

	released := struct {
		LockID      string `json:"lockId"`
		Beneficiary string `json:"beneficiary"`
		Amount      string `json:"amount"`
	}{LockID: lockID, Beneficiary: lock.Beneficiary, Amount: balance.String()}

	releasedJSON, err := json.Marshal(released)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = ctx.SetEvent(lockReleasedEvent, releasedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to set event: %v", err)
	}

	return balance, nil
}
