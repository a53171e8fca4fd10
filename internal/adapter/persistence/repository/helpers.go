package repository

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

func stringKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
