package booking

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"math/big"
	"strings"
	"time"
)

type Money struct {
	cents int64
}

// NewMoneyFromAmount converts a major-unit amount (e.g. 1250.50) to minor units.
func NewMoneyFromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Money{}, ErrNonPositiveAmount
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

type Passenger struct {
	Name            string
	Phone           string
	Email           string
	PickupPoint     string
	DropPoint       string
	SpecialRequests string
}

func NewPassenger(name, phone, email, pickup, drop, requests string) (Passenger, error) {
	p := Passenger{
		Name:            strings.TrimSpace(name),
		Phone:           strings.TrimSpace(phone),
		Email:           strings.TrimSpace(email),
		PickupPoint:     strings.TrimSpace(pickup),
		DropPoint:       strings.TrimSpace(drop),
		SpecialRequests: strings.TrimSpace(requests),
	}
	if p.Name == "" || p.Phone == "" {
		return Passenger{}, ErrPassengerRequired
	}
	return p, nil
}

type Payment struct {
	Method string
	Status PaymentStatus
}

func NewPayment(method string, status PaymentStatus) (Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return Payment{}, ErrPaymentMethodRequired
	}
	if !status.IsValid() {
		return Payment{}, ErrInvalidPaymentStatus
	}
	return Payment{Method: method, Status: status}, nil
}

func (p Payment) Settled() bool {
	return p.Status == PaymentSuccess
}

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReference returns a human readable booking reference such as BK20261102X7K9QP.
func NewReference(now time.Time) string {
	var sb strings.Builder
	sb.WriteString("BK")
	sb.WriteString(now.UTC().Format("20060102"))
	alphabetLen := big.NewInt(int64(len(referenceAlphabet)))
	for range 6 {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			n = big.NewInt(now.UnixNano() % int64(len(referenceAlphabet)))
		}
		sb.WriteByte(referenceAlphabet[n.Int64()])
	}
	return sb.String()
}

// NewTicketNumber returns a ticket number such as TKT-20261102-9f3a01bc.
func NewTicketNumber(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "TKT-" + now.UTC().Format("20060102") + "-" + hex.EncodeToString([]byte{byte(now.UnixNano())})
	}
	return "TKT-" + now.UTC().Format("20060102") + "-" + hex.EncodeToString(buf)
}
