package httpdto

// Field names mirror the public API contract consumed by the seller and admin
// frontends.

type PriceItemImportRequest struct {
	OwnerID     string `json:"ownerId"`
	PacketID    string `json:"packetId"`
	INN         string `json:"inn"`
	StdSupplier string `json:"std_supplier"`
	ItemID      string `json:"itemId"`
}

type MappingRequest struct {
	Token               string `json:"token"`
	GroupID             string `json:"group_id"`
	CanonicalSupplierID string `json:"canonical_supplier_id"`
}

type IssueCreateRequest struct {
	Token   string `json:"token"`
	GroupID string `json:"group_id"`
	Comment string `json:"comment"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RejectRequest struct {
	ReasonCode      string `json:"reason_code"`
	CommentInternal string `json:"comment_internal"`
}

type SupplierRequest struct {
	Supplier string `json:"supplier"`
	INN      string `json:"inn"`
	KPP      string `json:"kpp"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Address  string `json:"address"`
	URL      string `json:"url"`
	Branch   string `json:"branch"`
}
