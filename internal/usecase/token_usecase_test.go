package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

func TestTokenResolve(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tokenRepo := &memoryTokenRepo{tokens: map[string]*domain.SellerToken{
		"live": {ID: "t1", Token: "live", OwnerID: "owner-1", PacketID: "packet-1", ExpiresAt: now.Add(time.Hour)},
		"dead": {ID: "t2", Token: "dead", OwnerID: "owner-1", PacketID: "packet-1", ExpiresAt: now.Add(-time.Second)},
		"edge": {ID: "t3", Token: "edge", OwnerID: "owner-1", PacketID: "packet-1", ExpiresAt: now},
	}}
	uc := NewDefaultTokenUsecase(tokenRepo)
	uc.now = func() time.Time { return now }

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: "live", wantErr: nil},
		{name: "expired", token: "dead", wantErr: domain.ErrTokenExpired},
		{name: "expired at exact expiry instant", token: "edge", wantErr: domain.ErrTokenExpired},
		{name: "unknown", token: "ghost", wantErr: domain.ErrTokenInvalid},
		{name: "empty", token: "", wantErr: domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sellerToken, err := uc.Resolve(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (sellerToken.OwnerID != "owner-1" || sellerToken.PacketID != "packet-1") {
				t.Errorf("scope = %s/%s, want owner-1/packet-1", sellerToken.OwnerID, sellerToken.PacketID)
			}
		})
	}
}
