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
	"batchsender/core"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type SQSConfiguration struct {
	// Destination is either a queue URL or a queue name.
	Destination string
	Region      string
	Endpoint    string
}

// Client is the subset of the SQS API used by this package.
// It is satisfied by `*sqs.SQS`.
type Client interface {
	GetQueueUrlWithContext(aws.Context, *sqs.GetQueueUrlInput, ...request.Option) (*sqs.GetQueueUrlOutput, error)
	SendMessageBatchWithContext(aws.Context, *sqs.SendMessageBatchInput, ...request.Option) (*sqs.SendMessageBatchOutput, error)
	GetQueueAttributesWithContext(aws.Context, *sqs.GetQueueAttributesInput, ...request.Option) (*sqs.GetQueueAttributesOutput, error)
}

type SQSSender struct {
	Client    Client
	QueueUrl  string
	logFields log.Fields
}

func (s *SQSSender) SendBatch(ctx context.Context, entries []*core.BatchEntry) (*core.BatchResult, error) {
	if len(entries) > core.MaxBatchSize {
		return nil, errors.Errorf("batch size cannot exceed %d entries, got %d", core.MaxBatchSize, len(entries))
	}

	input := &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(s.QueueUrl),
		Entries:  make([]*sqs.SendMessageBatchRequestEntry, len(entries)),
	}
	for i, e := range entries {
		entry := &sqs.SendMessageBatchRequestEntry{
			Id:          aws.String(e.ID),
			MessageBody: aws.String(e.Body),
		}
		if e.GroupingKey != "" {
			entry.MessageGroupId = aws.String(e.GroupingKey)
		}
		input.Entries[i] = entry
	}

	output, err := s.Client.SendMessageBatchWithContext(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := &core.BatchResult{Submitted: len(entries)}
	for _, f := range output.Failed {
		result.Failures = append(result.Failures, core.EntryFailure{
			ID:          aws.StringValue(f.Id),
			Code:        aws.StringValue(f.Code),
			Reason:      aws.StringValue(f.Message),
			SenderFault: aws.BoolValue(f.SenderFault),
		})
	}

	log.WithFields(s.logFields).WithFields(log.Fields{
		"successful": len(output.Successful),
		"failed":     len(output.Failed),
	}).Debug("send message batch returned")
	return result, nil
}

func (s *SQSSender) Close() error {
	return nil
}

// ResolveQueueUrl returns destination unchanged when it is already
// a URL. Otherwise destination is treated as a queue name and looked up.
func ResolveQueueUrl(ctx context.Context, client Client, destination string) (string, error) {
	if strings.HasPrefix(destination, "https://") || strings.HasPrefix(destination, "http://") {
		return destination, nil
	}

	urlResult, err := client.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(destination),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	if urlResult.QueueUrl == nil {
		return "", errors.Errorf("queue url is nil for queue %s", destination)
	}
	return *urlResult.QueueUrl, nil
}

func NewClient(configuration *SQSConfiguration) (*sqs.SQS, error) {
	config := &aws.Config{
		Region: aws.String(configuration.Region),
	}
	if configuration.Endpoint != "" {
		config.Endpoint = aws.String(configuration.Endpoint)
	}

	s, err := session.NewSession(config)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sqs.New(s), nil
}

func NewSQSSender(ctx context.Context, client Client, destination string) (*SQSSender, error) {
	url, err := ResolveQueueUrl(ctx, client, destination)
	if err != nil {
		return nil, err
	}

	return &SQSSender{
		Client:    client,
		QueueUrl:  url,
		logFields: log.Fields{"module": "sqs_sender", "queue": url},
	}, nil
}

type SQSSenderBuilder struct {
}

func (b *SQSSenderBuilder) Build(ctx context.Context, config *core.Config, options interface{}) (core.BatchSender, error) {
	sqsConfig := options.(SQSConfiguration)
	client, err := NewClient(&sqsConfig)
	if err != nil {
		return nil, err
	}
	return NewSQSSender(ctx, client, sqsConfig.Destination)
}
