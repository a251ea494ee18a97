// Package db loads saved chord progressions from DynamoDB. Each item is
// keyed by song name with the progression stored as a space-separated
// string of chord symbols.
package db

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/theory"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func GetProgressions(names []string) (map[string][]theory.Chord, error) {
	if len(names) > 10 {
		return nil, fmt.Errorf("can't fetch more than 10 progressions at once")
	}

	res := make(map[string][]theory.Chord)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %v", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.ProgressionsTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %v", err)
	}

	for _, v := range dbres.Responses[constants.ProgressionsTable] {
		if v["PK"].S == nil || v["Chords"].S == nil {
			continue
		}
		name := *v["PK"].S
		var chords []theory.Chord
		for _, symbol := range strings.Fields(*v["Chords"].S) {
			c, err := theory.ParseChord(symbol)
			if err != nil {
				return nil, fmt.Errorf("bad chord %v in saved progression %v: %v", symbol, name, err)
			}
			chords = append(chords, c)
		}
		res[name] = chords
	}

	return res, nil
}
