package dynamodb

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var _ ports.OrderStore = (*OrderStore)(nil)

type OrderStore struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

func NewOrderStore(ddb *dynamodb.Client, tableName string) *OrderStore {
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &OrderStore{ddb: ddb, tableName: tableName, now: time.Now}
}

func (s *OrderStore) ReadCurrentOrder(ctx context.Context, userKey string) (*order.Order, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            key(userPK(userKey), skCurrent),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, errs.NewObjectNotFoundError("current order", userKey)
	}

	var it orderItem
	if err = attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromOrderItem(it)
}

func (s *OrderStore) WriteCurrentOrder(ctx context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(toOrderItem(userPK(userKey), skCurrent, o, s.now()))
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *OrderStore) AppendToHistory(ctx context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return s.putOnce(ctx, toOrderItem(userPK(userKey), skHistoryPrefix+o.Number(), o, s.now()))
}

func (s *OrderStore) AppendToGlobalHistory(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return s.putOnce(ctx, toOrderItem(pkGlobalHistory, skGlobalPrefix+o.Number(), o, s.now()))
}

func (s *OrderStore) UpdateHistoryRating(
	ctx context.Context,
	userKey, orderNumber string,
	rating kernel.Rating,
) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	userUpdated, err := s.setRating(ctx, key(userPK(userKey), skHistoryPrefix+orderNumber), rating)
	if err != nil {
		return err
	}
	globalUpdated, err := s.setRating(ctx, key(pkGlobalHistory, skGlobalPrefix+orderNumber), rating)
	if err != nil {
		return err
	}

	if !userUpdated && !globalUpdated {
		return errs.NewObjectNotFoundError("history entry", orderNumber)
	}
	return nil
}

func (s *OrderStore) ListHistory(ctx context.Context, userKey string) ([]*order.Order, error) {
	return s.queryNewestFirst(ctx, userPK(userKey), skHistoryPrefix)
}

func (s *OrderStore) ListGlobalHistory(ctx context.Context) ([]*order.Order, error) {
	return s.queryNewestFirst(ctx, pkGlobalHistory, skGlobalPrefix)
}

// putOnce writes it unless an item with the same key exists.
func (s *OrderStore) putOnce(ctx context.Context, it orderItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
		},
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return nil
	}
	return err
}

// setRating reports false when the item does not exist.
func (s *OrderStore) setRating(ctx context.Context, k map[string]types.AttributeValue, rating kernel.Rating) (bool, error) {
	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 k,
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #rating = :rating"),
		ExpressionAttributeNames: map[string]string{
			"#pk":     attrPK,
			"#rating": "rating",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rating": &types.AttributeValueMemberN{Value: strconv.Itoa(rating.Int())},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *OrderStore) queryNewestFirst(ctx context.Context, pk, skPrefix string) ([]*order.Order, error) {
	paginator := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
			"#sk": attrSK,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: pk},
			":prefix": &types.AttributeValueMemberS{Value: skPrefix},
		},
		ConsistentRead: aws.Bool(true),
	})

	var items []orderItem
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var pageItems []orderItem
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].WrittenAt > items[j].WrittenAt
	})

	orders := make([]*order.Order, 0, len(items))
	for _, it := range items {
		o, err := fromOrderItem(it)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: pk},
		attrSK: &types.AttributeValueMemberS{Value: sk},
	}
}
