/*
Copyright © 2020 Blaster Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqs_test

import (
	"batchsender/mocks"
	binder "batchsender/sqs"
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func depthOutput(attributes map[string]*string) *sqs.GetQueueAttributesOutput {
	return &sqs.GetQueueAttributesOutput{Attributes: attributes}
}

func TestQueueDepth(t *testing.T) {
	cases := []struct {
		name     string
		output   *sqs.GetQueueAttributesOutput
		expected int
	}{
		{"present", depthOutput(map[string]*string{"ApproximateNumberOfMessages": aws.String("42")}), 42},
		{"missing", depthOutput(map[string]*string{}), 0},
		{"malformed", depthOutput(map[string]*string{"ApproximateNumberOfMessages": aws.String("many")}), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().
				GetQueueAttributesWithContext(gomock.Any(), &sqs.GetQueueAttributesInput{
					QueueUrl:       aws.String(testQueueUrl),
					AttributeNames: []*string{aws.String("ApproximateNumberOfMessages")},
				}).
				Return(c.output, nil)

			depth, err := binder.QueueDepth(context.Background(), client, testQueueUrl)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, depth)
		})
	}
}
