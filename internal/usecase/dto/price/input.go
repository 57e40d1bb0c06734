package pricedto

type PriceItemInput struct {
	OwnerID     string
	PacketID    string
	RawINN      string
	RawSupplier string
	ItemID      string
}
