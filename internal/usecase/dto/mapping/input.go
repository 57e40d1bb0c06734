package mappingdto

type CreateMappingInput struct {
	Token               string
	GroupID             string
	CanonicalSupplierID string
}

type RejectInput struct {
	MappingID       string
	DecidedBy       string
	ReasonCode      string
	CommentInternal string
}
