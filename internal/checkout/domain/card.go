package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Card struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

func (c Card) NormalizedNumber() string {
	return strings.NewReplacer(" ", "", "-", "").Replace(c.Number)
}

func (c Card) LastFour() string {
	number := c.NormalizedNumber()
	if len(number) < 4 {
		return number
	}

	return number[len(number)-4:]
}

// Validate checks the card at now. The card stays valid through the last day of its expiry month.
func (c Card) Validate(now time.Time) error {
	number := c.NormalizedNumber()
	if len(number) < 13 || len(number) > 19 || !isDigits(number) {
		return &ValidationError{Msg: "card number must have 13 to 19 digits"}
	}

	if !luhnValid(number) {
		return &ValidationError{Msg: "card number is invalid"}
	}

	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Msg: "card holder name is required"}
	}

	month, year, err := parseExpiry(c.Expiry)
	if err != nil {
		return err
	}

	firstInvalid := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.UTC().Before(firstInvalid) {
		return &ValidationError{Msg: "card is expired"}
	}

	if (len(c.CVV) != 3 && len(c.CVV) != 4) || !isDigits(c.CVV) {
		return &ValidationError{Msg: "card cvv must have 3 or 4 digits"}
	}

	return nil
}

// ExpiryDate returns the expiry month and four-digit year.
func (c Card) ExpiryDate() (int, int, error) {
	return parseExpiry(c.Expiry)
}

func parseExpiry(expiry string) (int, int, error) {
	invalid := &ValidationError{Msg: "card expiry must be MM/YYYY"}

	monthPart, yearPart, ok := strings.Cut(strings.TrimSpace(expiry), "/")
	if !ok || len(monthPart) != 2 || !isDigits(monthPart) || !isDigits(yearPart) {
		return 0, 0, invalid
	}

	month, _ := strconv.Atoi(monthPart)
	if month < 1 || month > 12 {
		return 0, 0, invalid
	}

	year, _ := strconv.Atoi(yearPart)
	switch len(yearPart) {
	case 2:
		year += 2000
	case 4:
	default:
		return 0, 0, invalid
	}

	return month, year, nil
}

func luhnValid(number string) bool {
	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func (c Card) String() string {
	return fmt.Sprintf("card ending %s", c.LastFour())
}
