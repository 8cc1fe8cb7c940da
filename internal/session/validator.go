package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/payout"
)

var validate = validator.New()

// ParseBet turns raw player input into a bet checked against balance. A bet
// whose best payout at maxMultiplier would not fit in the balance is refused.
// Every failure wraps domain.ErrValidation; the message is fit for the player.
func ParseBet(raw string, balance int64, maxMultiplier int) (domain.Bet, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return domain.Bet{}, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgNotANumber)
	}

	bet := domain.Bet{Amount: amount, Balance: balance}
	if err := validate.Struct(bet); err != nil {
		return domain.Bet{}, fmt.Errorf("%w: %s", domain.ErrValidation, formatValidationError(err))
	}
	if !payout.Fits(bet.Amount, balance, maxMultiplier) {
		return domain.Bet{}, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgBetTooLarge)
	}
	return bet, nil
}

// PlayerMessage strips the sentinel prefix from a validation error
func PlayerMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrMsgValidation + ": "
	return strings.TrimPrefix(msg, prefix)
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return domain.ErrMsgInsufficientBet
	}

	switch validationErrors[0].Tag() {
	case "gt":
		return domain.ErrMsgNonPositiveBet
	default:
		return domain.ErrMsgInsufficientBet
	}
}
