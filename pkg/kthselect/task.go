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

package kthselect

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/andreimuntean/Quickselect/pkg/config"
	"github.com/andreimuntean/Quickselect/pkg/intreader"
	"github.com/andreimuntean/Quickselect/pkg/presenter"
	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/andreimuntean/Quickselect/pkg/util/selection"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrMissingArgument is returned when no input file path is given.
	ErrMissingArgument = errors.Normalize("No file path was specified.", errors.RFCCodeText("KthSelect:Cli:ErrMissingArgument"))
	// ErrTooManyArguments is returned when more than one positional argument is given.
	ErrTooManyArguments = errors.Normalize("expected exactly one file path, got %d arguments", errors.RFCCodeText("KthSelect:Cli:ErrTooManyArguments"))
)

// ValidateArgs checks the positional arguments and returns the input file path.
func ValidateArgs(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrMissingArgument.GenWithStackByArgs()
	case 1:
		return args[0], nil
	default:
		return "", ErrTooManyArguments.GenWithStackByArgs(len(args))
	}
}

// Task reads integers from a file, asks for a rank when none is configured,
// and presents the k-th greatest distinct value.
type Task struct {
	conf *config.Config
	fs   afero.Fs
	in   io.Reader
	out  io.Writer
}

// NewTask creates a Task. in and out are used for the rank prompt and the
// result.
func NewTask(conf *config.Config, fs afero.Fs, in io.Reader, out io.Writer) *Task {
	return &Task{
		conf: conf,
		fs:   fs,
		in:   in,
		out:  out,
	}
}

// Run executes the task on the file at path. It returns the index of the
// selected value in the file, or selection.NotFound.
func (t *Task) Run(ctx context.Context, path string) (int, error) {
	vals, err := intreader.ReadFile(t.fs, path)
	if err != nil {
		return selection.NotFound, err
	}
	if err = ctx.Err(); err != nil {
		return selection.NotFound, errors.Trace(err)
	}

	k := t.conf.Select.Rank
	if k == 0 {
		if k, err = intreader.PromptRank(t.in, t.out); err != nil {
			return selection.NotFound, err
		}
	}
	if err = ctx.Err(); err != nil {
		return selection.NotFound, errors.Trace(err)
	}

	seed := t.conf.Select.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	index := selection.Select(vals, k, rand.New(rand.NewSource(seed)))
	logutil.Info("selection finished",
		zap.Int("k", k),
		zap.Int("values", len(vals)),
		zap.Int64("seed", seed),
		zap.Int("index", index),
		zap.Duration("take", time.Since(start)))

	return index, presenter.New(t.out, t.conf.Select.Color).Present(vals, index)
}

// RegisterMetrics registers the metrics of every stage of the task.
func RegisterMetrics(registry *prometheus.Registry) {
	selection.RegisterMetrics(registry)
	intreader.RegisterMetrics(registry)
}

// LogMetrics logs the current value of the registered metrics at debug level.
func LogMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		logutil.Warn("gather metrics failed", zap.Error(err))
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			fields := []zap.Field{zap.String("name", family.GetName())}
			for _, label := range m.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
			logutil.Debug("metric", fields...)
		}
	}
}
