package usecase

import (
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/metrics"
)

type IssueUsecase interface {
	Report(token, groupID, comment string) (*domain.Issue, error)
	ListIssues() ([]*domain.Issue, error)
}

type DefaultIssueUsecase struct {
	issueRepo domain.IssueRepository
	groupRepo domain.GroupRepository
	tokenUc   TokenUsecase
	metrics   *metrics.MappingMetrics
}

func NewDefaultIssueUsecase(
	issueRepo domain.IssueRepository,
	groupRepo domain.GroupRepository,
	tokenUc TokenUsecase,
	mappingMetrics *metrics.MappingMetrics,
) *DefaultIssueUsecase {
	return &DefaultIssueUsecase{
		issueRepo: issueRepo,
		groupRepo: groupRepo,
		tokenUc:   tokenUc,
		metrics:   mappingMetrics,
	}
}

// Report appends a supplier-not-found note for a group the token owns. It has
// no effect on the group's derived status.
func (uc *DefaultIssueUsecase) Report(token, groupID, comment string) (*domain.Issue, error) {
	sellerToken, err := uc.tokenUc.Resolve(token)
	if err != nil {
		return nil, err
	}
	group, err := uc.groupRepo.GetGroupByID(groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != sellerToken.OwnerID || group.PacketID != sellerToken.PacketID {
		return nil, domain.ErrGroupNotFound
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	issue := &domain.Issue{
		ID:          idGenerator(),
		OwnerID:     group.OwnerID,
		PacketID:    group.PacketID,
		GroupID:     group.ID,
		INNNorm:     group.INNNorm,
		RawSupplier: group.RawSupplier,
		Comment:     comment,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.issueRepo.CreateIssue(issue); err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.IssuesReportedTotal.WithLabelValues(issue.OwnerID, issue.PacketID).Inc()
	}
	return issue, nil
}

func (uc *DefaultIssueUsecase) ListIssues() ([]*domain.Issue, error) {
	return uc.issueRepo.ListIssues()
}
