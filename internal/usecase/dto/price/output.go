package pricedto

type ImportResult struct {
	GroupsCreated int
	GroupsUpdated int
	ItemsIngested int
}
