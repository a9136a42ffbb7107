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
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const DefaultGroupingKeyPolicy string = "position"
const groupingKeyPrefix string = "MessageGroupId"

// GroupingKeyPolicy derives the grouping key of an entry from its
// position within the batch and its sequence number within the run.
// An empty key means the entry is sent without one.
type GroupingKeyPolicy func(position, sequence int) string

// PositionGroupingKey keys entries by their position in the batch.
// Entries at the same position of different batches share a key.
func PositionGroupingKey(position, sequence int) string {
	return fmt.Sprintf("%s-%d", groupingKeyPrefix, position)
}

// SequenceGroupingKey gives every message of a run its own key.
func SequenceGroupingKey(position, sequence int) string {
	return fmt.Sprintf("%s-%d", groupingKeyPrefix, sequence)
}

// SingleGroupingKey puts every message in the same group.
func SingleGroupingKey(position, sequence int) string {
	return groupingKeyPrefix
}

// KeySource draws random grouping keys. It is safe for
// concurrent use.
type KeySource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *KeySource) Key() string {
	buf := make([]byte, 8)
	s.mu.Lock()
	s.rnd.Read(buf)
	s.mu.Unlock()
	return fmt.Sprintf("%s-%s", groupingKeyPrefix, hex.EncodeToString(buf))
}

func NewKeySource(seed uint64) *KeySource {
	return &KeySource{rnd: rand.New(rand.NewSource(seed))}
}

var randomKeys = NewKeySource(uint64(time.Now().UnixNano()))

// RandomGroupingKey draws a random key for every message.
// Keys differ between runs.
func RandomGroupingKey(position, sequence int) string {
	return randomKeys.Key()
}

func NoGroupingKey(position, sequence int) string {
	return ""
}

var groupingKeyPolicies = map[string]GroupingKeyPolicy{
	"position": PositionGroupingKey,
	"sequence": SequenceGroupingKey,
	"single":   SingleGroupingKey,
	"random":   RandomGroupingKey,
	"none":     NoGroupingKey,
}

// GetGroupingKeyPolicy returns the policy registered under name.
// An empty name selects the default policy.
func GetGroupingKeyPolicy(name string) (GroupingKeyPolicy, error) {
	if name == "" {
		name = DefaultGroupingKeyPolicy
	}
	p, ok := groupingKeyPolicies[name]
	if !ok {
		return nil, errors.Errorf("unknown grouping key policy %q", name)
	}
	return p, nil
}
