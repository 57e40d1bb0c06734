package httpdto

import "time"

type ImportResponse struct {
	ItemsIngested int `json:"items_ingested"`
	GroupsCreated int `json:"groups_created"`
	GroupsUpdated int `json:"groups_updated"`
}

type GroupResponse struct {
	ID                  string     `json:"id"`
	OwnerID             string     `json:"owner_id"`
	PacketID            string     `json:"packet_id"`
	INNNorm             *string    `json:"inn_norm"`
	INNInvalid          bool       `json:"inn_invalid"`
	StdSupplierRaw      string     `json:"std_supplier_raw"`
	ItemsCount          int64      `json:"items_count"`
	Status              string     `json:"status"`
	CanonicalSupplier   *string    `json:"canonical_supplier,omitempty"`
	CanonicalSupplierID *string    `json:"canonical_supplier_id,omitempty"`
	LatestDecisionAt    *time.Time `json:"latest_decision_at,omitempty"`
	RejectReasonLabel   *string    `json:"reject_reason_label,omitempty"`
}

type SupplierResponse struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	INN       string    `json:"inn"`
	KPP       string    `json:"kpp,omitempty"`
	Country   string    `json:"country,omitempty"`
	City      string    `json:"city,omitempty"`
	Address   string    `json:"address,omitempty"`
	URL       string    `json:"url,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MappingCreatedResponse struct {
	Status    string `json:"status"`
	MappingID string `json:"mapping_id"`
}

// PendingMappingResponse carries both the price-side and canonical-side INN so
// moderators can review discrepancies digit by digit.
type PendingMappingResponse struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"owner_id"`
	PacketID            string    `json:"packet_id"`
	INNNorm             *string   `json:"inn_norm"`
	StdSupplierRaw      string    `json:"std_supplier_raw"`
	Status              string    `json:"status"`
	CanonicalSupplierID string    `json:"canonical_supplier_id"`
	CanonicalSupplier   string    `json:"canonical_supplier"`
	CanonicalINN        string    `json:"canonical_inn"`
	CreatedAt           time.Time `json:"created_at"`
}

type DecisionResponse struct {
	Status      string `json:"status"`
	ReasonLabel string `json:"reason_label,omitempty"`
}

type ModerationEventResponse struct {
	ID                    string    `json:"id"`
	OwnerID               string    `json:"owner_id"`
	PacketID              string    `json:"packet_id"`
	SupplierGroupID       string    `json:"supplier_group_id"`
	MappingID             string    `json:"mapping_id"`
	Decision              string    `json:"decision"`
	DecidedAt             time.Time `json:"decided_at"`
	DecidedBy             string    `json:"decided_by"`
	RejectReasonLabel     string    `json:"reject_reason_label,omitempty"`
	RejectCommentInternal string    `json:"reject_comment_internal,omitempty"`
	StdSupplierRaw        string    `json:"std_supplier_raw"`
	INNNorm               *string   `json:"inn_norm"`
	CanonicalSupplier     string    `json:"canonical_supplier,omitempty"`
	CanonicalINN          string    `json:"canonical_inn,omitempty"`
	CanonicalCity         string    `json:"canonical_city,omitempty"`
}

type IssueResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	PacketID    string    `json:"packet_id"`
	GroupID     string    `json:"group_id"`
	INNNorm     *string   `json:"inn_norm"`
	StdSupplier string    `json:"std_supplier"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnalyticsMappingResponse struct {
	OwnerID             string     `json:"ownerId"`
	PacketID            string     `json:"packetId"`
	INN                 *string    `json:"inn"`
	StdSupplierRaw      string     `json:"std_supplier_raw"`
	CanonicalSupplierID string     `json:"canonical_supplier_id"`
	CanonicalSupplier   string     `json:"canonical_supplier"`
	ApprovedAt          *time.Time `json:"approved_at"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
