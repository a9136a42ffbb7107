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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchLaps(t *testing.T) {
	now := time.Unix(0, 0)
	sw := newStopwatch(func() time.Time { return now })

	now = now.Add(time.Second)
	assert.Equal(t, time.Second, sw.Lap("batch-0"))
	now = now.Add(2 * time.Second)
	assert.Equal(t, 2*time.Second, sw.Lap("batch-1"))

	assert.Equal(t, []Lap{{"batch-0", time.Second}, {"batch-1", 2 * time.Second}}, sw.Laps)
	assert.Equal(t, 3*time.Second, sw.Total())
}
