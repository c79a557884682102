package token

import "errors"

var (
	ErrTokenAlreadyInitialized = errors.New("TokenAlreadyInitialized")
	ErrTokenNotInitialized     = errors.New("TokenNotInitialized")
	ErrMintingFinished         = errors.New("MintingFinished")
	ErrTokenPaused             = errors.New("TokenPaused")
	ErrInsufficientBalance     = errors.New("InsufficientBalance")
)
