// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package presenter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pingcap/errors"
)

// DoesNotExist is printed when the requested rank has no value.
const DoesNotExist = "Does not exist."

// Presenter prints selection results.
type Presenter struct {
	out     io.Writer
	found   *color.Color
	missing *color.Color
}

// New creates a Presenter writing to out. When colored is false the output
// carries no escape sequences, whatever the terminal supports.
func New(out io.Writer, colored bool) *Presenter {
	p := &Presenter{
		out:     out,
		found:   color.New(color.FgGreen, color.Bold),
		missing: color.New(color.FgYellow),
	}
	if colored {
		p.found.EnableColor()
		p.missing.EnableColor()
	} else {
		p.found.DisableColor()
		p.missing.DisableColor()
	}
	return p
}

// Present prints the value at index in input, or DoesNotExist when index
// is negative.
func (p *Presenter) Present(input []int, index int) error {
	if index < 0 || index >= len(input) {
		return p.NotFound()
	}
	return p.Found(input[index], index)
}

// Found prints value and the index it was found at.
func (p *Presenter) Found(value, index int) error {
	_, err := fmt.Fprintln(p.out, p.found.Sprintf("%d (index %d)", value, index))
	return errors.Trace(err)
}

// NotFound prints DoesNotExist.
func (p *Presenter) NotFound() error {
	_, err := fmt.Fprintln(p.out, p.missing.Sprint(DoesNotExist))
	return errors.Trace(err)
}
