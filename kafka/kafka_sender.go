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

package kafka

import (
	"batchsender/core"
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Topic           string
	BrokerAddresses []string
}

// KafkaSender publishes each batch with a single
// `SendMessages` call on a synchronous producer.
// Grouping keys become message keys so that messages
// sharing a key land on the same partition.
type KafkaSender struct {
	Producer  sarama.SyncProducer
	Topic     string
	logFields log.Fields
}

func (s *KafkaSender) SendBatch(ctx context.Context, entries []*core.BatchEntry) (*core.BatchResult, error) {
	if len(entries) > core.MaxBatchSize {
		return nil, errors.Errorf("batch size cannot exceed %d entries, got %d", core.MaxBatchSize, len(entries))
	}
	// sarama does not take a context. Honour cancellation
	// before handing the batch over.
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	msgs := make([]*sarama.ProducerMessage, len(entries))
	for i, e := range entries {
		msg := &sarama.ProducerMessage{
			Topic:    s.Topic,
			Value:    sarama.StringEncoder(e.Body),
			Metadata: e.ID,
		}
		if e.GroupingKey != "" {
			msg.Key = sarama.StringEncoder(e.GroupingKey)
		}
		msgs[i] = msg
	}

	result := &core.BatchResult{Submitted: len(entries)}
	err := s.Producer.SendMessages(msgs)
	if err == nil {
		return result, nil
	}

	perrs, ok := err.(sarama.ProducerErrors)
	if !ok {
		return nil, errors.WithStack(err)
	}

	for _, pe := range perrs {
		id, _ := pe.Msg.Metadata.(string)
		result.Failures = append(result.Failures, core.EntryFailure{
			ID:     id,
			Reason: pe.Err.Error(),
		})
	}
	log.WithFields(s.logFields).WithField("failed", len(perrs)).Debug("producer rejected messages")
	return result, nil
}

func (s *KafkaSender) Close() error {
	return errors.WithStack(s.Producer.Close())
}

func NewKafkaSender(producer sarama.SyncProducer, topic string) *KafkaSender {
	return &KafkaSender{
		Producer:  producer,
		Topic:     topic,
		logFields: log.Fields{"module": "kafka_sender", "topic": topic},
	}
}

func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_4_0_0 // specify appropriate version
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	return config
}

type KafkaSenderBuilder struct {
}

func (b *KafkaSenderBuilder) Build(ctx context.Context, config *core.Config, options interface{}) (core.BatchSender, error) {
	kafkaConfig := options.(Config)
	if len(kafkaConfig.BrokerAddresses) == 0 {
		return nil, errors.New("at least one broker address is required")
	}

	producer, err := sarama.NewSyncProducer(kafkaConfig.BrokerAddresses, NewProducerConfig())
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewKafkaSender(producer, kafkaConfig.Topic), nil
}
