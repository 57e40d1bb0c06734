package domain

import "time"

// SellerToken scopes one bearer credential to one owner+packet. Tokens are
// issued out-of-band and never refreshed; an expired token means reissuance.
type SellerToken struct {
	ID        string
	Token     string
	OwnerID   string
	PacketID  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type TokenRepository interface {
	GetByToken(token string) (*SellerToken, error)
	CreateToken(token *SellerToken) error
}
