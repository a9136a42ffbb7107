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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSuccess(t *testing.T) {
	out := &bytes.Buffer{}
	NewReporter(out).Report(&BatchResult{Submitted: 10})

	assert.Equal(t, "Successfully sent batch of 10 messages\n", out.String())
}

func TestReportFailures(t *testing.T) {
	out := &bytes.Buffer{}
	NewReporter(out).Report(&BatchResult{
		Submitted: 10,
		Failures: []EntryFailure{
			{ID: "3", Code: "InvalidMessageContents", Reason: "bad body", SenderFault: true},
			{ID: "7"},
		},
	})

	assert.Equal(t, "Failed to send messages: [3: InvalidMessageContents (bad body) sender-fault, 7]\n", out.String())
}
