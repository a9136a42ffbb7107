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

package sqs

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// QueueDepth returns the approximate number of messages
// available in the queue. A missing or malformed attribute
// is reported as an empty queue.
func QueueDepth(ctx context.Context, client Client, queueUrl string) (int, error) {
	output, err := client.GetQueueAttributesWithContext(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueUrl),
		AttributeNames: []*string{aws.String(sqs.QueueAttributeNameApproximateNumberOfMessages)},
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	v, ok := output.Attributes[sqs.QueueAttributeNameApproximateNumberOfMessages]
	if !ok || v == nil {
		return 0, nil
	}

	depth, err := strconv.Atoi(*v)
	if err != nil {
		log.WithFields(log.Fields{"module": "sqs_depth", "value": *v}).Info("unexpected queue length attribute")
		return 0, nil
	}
	return depth, nil
}
