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

package core_test

import (
	"batchsender/core"
	"batchsender/mocks"
	"batchsender/utils"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type batchSizeMatcher struct {
	size int
}

func (m batchSizeMatcher) Matches(x interface{}) bool {
	entries, ok := x.([]*core.BatchEntry)
	return ok && len(entries) == m.size
}

func (m batchSizeMatcher) String() string {
	return fmt.Sprintf("is a batch of %d entries", m.size)
}

func batchOfSize(size int) gomock.Matcher {
	return batchSizeMatcher{size}
}

type recordedBatches struct {
	batches [][]*core.BatchEntry
}

func (r *recordedBatches) record(ctx context.Context, entries []*core.BatchEntry) (*core.BatchResult, error) {
	r.batches = append(r.batches, entries)
	return &core.BatchResult{Submitted: len(entries)}, nil
}

func TestPublishNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockBatchSender(ctrl)
	out := &bytes.Buffer{}
	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(out))

	summary, err := p.Publish(context.Background(), core.GenerateMessages(0))

	assert.NoError(t, err)
	assert.Equal(t, &core.PublishSummary{}, summary)
	assert.Empty(t, out.String())
}

func TestPublishFiveMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := &recordedBatches{}
	sender := mocks.NewMockBatchSender(ctrl)
	sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).DoAndReturn(r.record)

	out := &bytes.Buffer{}
	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(out))
	_, err := p.Publish(context.Background(), core.GenerateMessages(5))

	assert.NoError(t, err)
	assert.Len(t, r.batches, 1)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, utils.EntryIDs(r.batches[0]))
	for i, e := range r.batches[0] {
		assert.Equal(t, "MessageGroupId-"+e.ID, e.GroupingKey, i)
	}
	assert.Equal(t, "Successfully sent batch of 5 messages\n", out.String())
}

func TestPublishPreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := &recordedBatches{}
	sender := mocks.NewMockBatchSender(ctrl)
	sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).DoAndReturn(r.record).Times(3)

	out := &bytes.Buffer{}
	messages := core.GenerateMessages(23)
	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(out))
	summary, err := p.Publish(context.Background(), messages)

	assert.NoError(t, err)
	assert.Equal(t, &core.PublishSummary{Batches: 3, Submitted: 23}, summary)

	sizes := []int{}
	received := []core.Message{}
	for _, b := range r.batches {
		sizes = append(sizes, len(b))
		received = append(received, utils.DecodeBodies(t, b)...)
	}
	assert.Equal(t, []int{10, 10, 3}, sizes)
	assert.Equal(t, messages, received)
	assert.Equal(t, []string{"0", "1", "2"}, utils.EntryIDs(r.batches[2]))
	assert.Equal(t, []string{
		"Successfully sent batch of 10 messages",
		"Successfully sent batch of 10 messages",
		"Successfully sent batch of 3 messages",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestPublishContinuesAfterEntryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockBatchSender(ctrl)
	gomock.InOrder(
		sender.EXPECT().SendBatch(gomock.Any(), batchOfSize(10)).Return(&core.BatchResult{
			Submitted: 10,
			Failures:  []core.EntryFailure{{ID: "4", Code: "InternalError"}},
		}, nil),
		sender.EXPECT().SendBatch(gomock.Any(), batchOfSize(10)).Return(&core.BatchResult{Submitted: 10}, nil),
		sender.EXPECT().SendBatch(gomock.Any(), batchOfSize(1)).Return(&core.BatchResult{Submitted: 1}, nil),
	)

	out := &bytes.Buffer{}
	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(out))
	summary, err := p.Publish(context.Background(), core.GenerateMessages(21))

	assert.NoError(t, err)
	assert.Equal(t, &core.PublishSummary{Batches: 3, Submitted: 21, Failed: 1}, summary)
	assert.Equal(t, []string{
		"Failed to send messages: [4: InternalError]",
		"Successfully sent batch of 10 messages",
		"Successfully sent batch of 1 messages",
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestPublishAbortsOnSenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockBatchSender(ctrl)
	gomock.InOrder(
		sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).Return(&core.BatchResult{Submitted: 10}, nil),
		sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied")),
	)

	out := &bytes.Buffer{}
	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(out))
	summary, err := p.Publish(context.Background(), core.GenerateMessages(30))

	assert.EqualError(t, err, "send batch 1: access denied")
	assert.Equal(t, 1, summary.Batches)
	assert.Equal(t, "Successfully sent batch of 10 messages\n", out.String())
}

func TestSenderErrorIsNotLoggedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hook := test.NewGlobal()
	defer hook.Reset()
	log.SetLevel(log.InfoLevel)

	sender := mocks.NewMockBatchSender(ctrl)
	sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	p := core.NewBatchPublisher(sender, core.PositionGroupingKey, core.NewReporter(&bytes.Buffer{}))
	_, err := p.Publish(context.Background(), core.GenerateMessages(3))

	assert.EqualError(t, err, "send batch 0: access denied")
	assert.Empty(t, hook.AllEntries())
}
