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
	"fmt"
	"io"
	"strings"
)

// Reporter prints the outcome of each batch.
type Reporter struct {
	out io.Writer
}

func (r *Reporter) Report(result *BatchResult) {
	if result.Succeeded() {
		fmt.Fprintf(r.out, "Successfully sent batch of %d messages\n", result.Submitted)
		return
	}

	parts := make([]string, len(result.Failures))
	for i, f := range result.Failures {
		parts[i] = formatFailure(f)
	}
	fmt.Fprintf(r.out, "Failed to send messages: [%s]\n", strings.Join(parts, ", "))
}

func formatFailure(f EntryFailure) string {
	s := f.ID
	if f.Code != "" {
		s = fmt.Sprintf("%s: %s", s, f.Code)
	}
	if f.Reason != "" {
		s = fmt.Sprintf("%s (%s)", s, f.Reason)
	}
	if f.SenderFault {
		s = s + " sender-fault"
	}
	return s
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}
