package usecase

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	publisher "github.com/pricelink/supplier-mapping-service/internal/infrastructure/kafka"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/metrics"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	mappingdto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/mapping"
)

type MappingUsecase interface {
	CreateMapping(input *mappingdto.CreateMappingInput) (*domain.SupplierMapping, error)
	Approve(mappingID, decidedBy string) (*domain.SupplierMapping, error)
	Reject(input *mappingdto.RejectInput) (*domain.SupplierMapping, error)
	PendingQueue() ([]*domain.SupplierMapping, error)
	SellerGroups(token string) ([]*domain.GroupStatusView, error)
}

type DefaultMappingUsecase struct {
	mappingRepo    domain.MappingRepository
	groupRepo      domain.GroupRepository
	supplierRepo   domain.SupplierRepository
	tokenUc        usecase.TokenUsecase
	kafkaPublisher *publisher.KafkaPublisher
	metrics        *metrics.MappingMetrics
}

func NewDefaultMappingUsecase(
	mappingRepo domain.MappingRepository,
	groupRepo domain.GroupRepository,
	supplierRepo domain.SupplierRepository,
	tokenUc usecase.TokenUsecase,
	kafkaPublisher *publisher.KafkaPublisher,
	mappingMetrics *metrics.MappingMetrics,
) *DefaultMappingUsecase {
	return &DefaultMappingUsecase{
		mappingRepo:    mappingRepo,
		groupRepo:      groupRepo,
		supplierRepo:   supplierRepo,
		tokenUc:        tokenUc,
		kafkaPublisher: kafkaPublisher,
		metrics:        mappingMetrics,
	}
}
