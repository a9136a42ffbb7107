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
)

// MaxBatchSize is the largest number of entries the
// batch APIs accept in a single request.
const MaxBatchSize = 10

// Message is a JSON object published as the body
// of a single batch entry.
type Message map[string]interface{}

// BatchEntry is the representation of a `Message`
// within a batch request.
type BatchEntry struct {
	ID          string
	Body        string
	GroupingKey string
}

// EntryFailure describes an entry rejected by the
// queue service.
type EntryFailure struct {
	ID          string
	Code        string
	Reason      string
	SenderFault bool
}

// BatchResult is the outcome of a single batch submission.
// A result either succeeded completely or carries the list
// of entries the service rejected.
type BatchResult struct {
	Submitted int
	Failures  []EntryFailure
}

// Succeeded reports whether every entry in the batch was accepted.
func (r *BatchResult) Succeeded() bool {
	return len(r.Failures) == 0
}

// BatchSender is the common interface used to interact with
// an underlaying queue service. Implementations submit one batch
// per call and return an error only when the request itself failed
// (i.e. network, authentication or an unknown destination).
type BatchSender interface {
	SendBatch(context.Context, []*BatchEntry) (*BatchResult, error)
	Close() error
}

// BatchSenderBuilder constructs a BatchSender from
// backend specific options.
type BatchSenderBuilder interface {
	Build(context.Context, *Config, interface{}) (BatchSender, error)
}

// Config of common knobs.
type Config struct {
	MessageCount      int
	GroupingKeyPolicy string
	EnableVerboseLog  bool
}
