package repository

import (
	"context"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultRegionsTableName = "regions"

type regionItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	CurrencyCode string `dynamodbav:"currency_code"`
}

// RegionDynamoRepository reads regions from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type RegionDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IRegionRepository = (*RegionDynamoRepository)(nil)

func NewRegionDynamoRepository(ddb DynamoAPI) *RegionDynamoRepository {
	return &RegionDynamoRepository{table: dynamoTable{
		ddb:   ddb,
		name:  getenvDefault("REGIONS_TABLE", defaultRegionsTableName),
		pkey:  "id",
		label: "regions",
	}}
}

func (r *RegionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Region, error) {
	av, err := r.table.get(ctx, id)
	if err != nil || av == nil {
		return entities.Region{}, err
	}
	var it regionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Region{}, err
	}
	return entities.Region(it), nil
}
