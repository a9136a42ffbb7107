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

package core

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PublishSummary aggregates the outcome of a run.
type PublishSummary struct {
	Batches   int
	Submitted int
	Failed    int
}

// BatchPublisher submits messages to a `BatchSender` in batches
// of `MaxBatchSize`.
type BatchPublisher struct {
	Sender      BatchSender
	GroupingKey GroupingKeyPolicy
	Reporter    *Reporter
	logFields   log.Fields
}

// Publish sends all messages in order, one batch at a time.
// The steps for each batch are:
// - Build the entries for the next chunk of messages
// - Submit them in a single request
// - Report either the failed entries or the number of
//   submitted entries and move on to the next chunk
// Rejected entries are never resubmitted. An error from the sender
// aborts the run and leaves the remaining batches unsent.
func (p *BatchPublisher) Publish(ctx context.Context, messages []Message) (*PublishSummary, error) {
	summary := &PublishSummary{}
	sw := NewStopwatch()
	offset := 0

	for i, chunk := range Chunk(messages, MaxBatchSize) {
		entries, err := BuildEntries(chunk, offset, p.GroupingKey)
		if err != nil {
			return summary, err
		}

		result, err := p.Sender.SendBatch(ctx, entries)
		d := sw.Lap(fmt.Sprintf("batch-%d", i))
		if err != nil {
			log.WithFields(p.logFields).WithFields(log.Fields{"batch": i, "err": err}).Debug("batch request failed")
			return summary, errors.Wrapf(err, "send batch %d", i)
		}

		p.Reporter.Report(result)
		log.WithFields(p.logFields).WithFields(log.Fields{
			"batch":     i,
			"entries":   len(entries),
			"failed":    len(result.Failures),
			"duration":  d,
			"firstSeq":  offset,
			"succeeded": result.Succeeded(),
		}).Debug("batch sent")

		summary.Batches++
		summary.Submitted += len(entries)
		summary.Failed += len(result.Failures)
		offset += len(chunk)
	}

	if summary.Batches > 0 {
		log.WithFields(p.logFields).WithFields(log.Fields{
			"batches":   summary.Batches,
			"submitted": summary.Submitted,
			"failed":    summary.Failed,
			"duration":  sw.Total(),
		}).Info("publish completed")
	}
	return summary, nil
}

func NewBatchPublisher(sender BatchSender, policy GroupingKeyPolicy, reporter *Reporter) *BatchPublisher {
	if policy == nil {
		policy = PositionGroupingKey
	}
	return &BatchPublisher{
		Sender:      sender,
		GroupingKey: policy,
		Reporter:    reporter,
		logFields:   log.Fields{"module": "batch_publisher"},
	}
}
