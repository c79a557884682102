package crowdsale

import (
	"errors"
	"fmt"
)

var (
	ErrNotWhitelisted       = errors.New("NotWhitelisted")
	ErrSaleNotOpen          = errors.New("SaleNotOpen")
	ErrSaleNotClosed        = errors.New("SaleNotClosed")
	ErrCapExceeded          = errors.New("CapExceeded")
	ErrBelowInvestorMinimum = errors.New("BelowInvestorMinimum")
	ErrAboveInvestorMaximum = errors.New("AboveInvestorMaximum")
	ErrUnauthorized         = errors.New("Unauthorized")
	ErrAlreadyFinalized     = errors.New("AlreadyFinalized")
	ErrAlreadyInitialized   = errors.New("AlreadyInitialized")
	ErrNotInitialized       = errors.New("NotInitialized")
	ErrInvalidUserAddress   = errors.New("InvalidUserAddress")
)

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("InvalidStage: %s", stage)
}

func ErrMintingRefused(investor string, err error) error {
	return fmt.Errorf("MintingRefused for %s: %w", investor, err)
}

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
