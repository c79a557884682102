package crowdsale

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

func GetUserId(ctx TransactionContext) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeId := string(decodeID)
	userId := completeId[(strings.Index(completeId, "x509::CN=") + 9):strings.Index(completeId, ",")]

	if !IsUserAddressValid(userId) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUserAddress, userId)
	}

	return userId, nil
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

// requireAdmin resolves the signer and checks it against the administrator
// recorded at Initialize.
func requireAdmin(ctx TransactionContext, config *SaleConfig) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer != config.Admin {
		return "", ErrUnauthorized
	}

	return signer, nil
}

// txTime returns the transaction timestamp in unix seconds. Chaincode must use
// the tx timestamp, not wall-clock time, so endorsements agree on "now".
func txTime(ctx TransactionContext) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "failed to get transaction timestamp", err)
	}

	return uint64(ts.Seconds), nil
}
