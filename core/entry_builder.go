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
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// BuildEntries creates one `BatchEntry` per message in the chunk.
// Entry ids are the message positions within the chunk, so they are
// reused by every chunk. offset is the ordinal of the first message
// of the chunk within the whole run and is handed to the policy as the
// message sequence number.
func BuildEntries(chunk []Message, offset int, policy GroupingKeyPolicy) ([]*BatchEntry, error) {
	entries := make([]*BatchEntry, len(chunk))
	for i, m := range chunk {
		body, err := json.Marshal(m)
		if err != nil {
			return nil, errors.Wrapf(err, "encode message %d", offset+i)
		}

		entries[i] = &BatchEntry{
			ID:          strconv.Itoa(i),
			Body:        string(body),
			GroupingKey: policy(i, offset+i),
		}
	}
	return entries, nil
}
