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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/andreimuntean/Quickselect/pkg/config"
	"github.com/andreimuntean/Quickselect/pkg/intreader"
	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/andreimuntean/Quickselect/pkg/util/selection"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const inputPath = "/input/ints.txt"

func newTestFs(t *testing.T, content string) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, inputPath, []byte(content), 0644))
	return fs
}

func newTestConfig(rank int) *config.Config {
	conf := config.NewConfig()
	conf.Select.Rank = rank
	conf.Select.Seed = 1
	return conf
}

func TestValidateArgs(t *testing.T) {
	path, err := ValidateArgs([]string{"ints.txt"})
	require.NoError(t, err)
	require.Equal(t, "ints.txt", path)

	_, err = ValidateArgs(nil)
	require.True(t, ErrMissingArgument.Equal(err))
	require.Contains(t, err.Error(), "No file path was specified.")

	_, err = ValidateArgs([]string{"a", "b"})
	require.True(t, ErrTooManyArguments.Equal(err))
}

func TestRunWithConfiguredRank(t *testing.T) {
	fs := newTestFs(t, "5 3 8 3 1\n")
	cases := []struct {
		rank     int
		index    int
		expected string
	}{
		{1, 2, "8 (index 2)\n"},
		{2, 0, "5 (index 0)\n"},
		{4, 4, "1 (index 4)\n"},
		{5, selection.NotFound, "Does not exist.\n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		index, err := NewTask(newTestConfig(c.rank), fs, strings.NewReader(""), &out).Run(context.Background(), inputPath)
		require.NoError(t, err)
		require.Equal(t, c.index, index)
		require.Equal(t, c.expected, out.String())
	}
}

func TestRunWithPrompt(t *testing.T) {
	fs := newTestFs(t, "5 3 8 3 1\n")

	var out bytes.Buffer
	index, err := NewTask(newTestConfig(0), fs, strings.NewReader("2\n"), &out).Run(context.Background(), inputPath)
	require.NoError(t, err)
	require.Equal(t, 0, index)
	require.Equal(t, "k = ?\n> 5 (index 0)\n", out.String())

	out.Reset()
	index, err = NewTask(newTestConfig(0), fs, strings.NewReader("-1\n"), &out).Run(context.Background(), inputPath)
	require.NoError(t, err)
	require.Equal(t, selection.NotFound, index)
	require.Equal(t, "k = ?\n> Does not exist.\n", out.String())

	out.Reset()
	_, err = NewTask(newTestConfig(0), fs, strings.NewReader("many\n"), &out).Run(context.Background(), inputPath)
	require.True(t, intreader.ErrMalformedRank.Equal(err))
}

func TestRunEmptyFile(t *testing.T) {
	var out bytes.Buffer
	index, err := NewTask(newTestConfig(1), newTestFs(t, ""), nil, &out).Run(context.Background(), inputPath)
	require.NoError(t, err)
	require.Equal(t, selection.NotFound, index)
	require.Equal(t, "Does not exist.\n", out.String())
}

func TestRunClockSeed(t *testing.T) {
	conf := newTestConfig(1)
	conf.Select.Seed = 0
	var out bytes.Buffer
	index, err := NewTask(conf, newTestFs(t, "1 9 9 4"), nil, &out).Run(context.Background(), inputPath)
	require.NoError(t, err)
	require.Equal(t, 1, index)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := NewTask(newTestConfig(1), afero.NewMemMapFs(), nil, &out).Run(context.Background(), inputPath)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewTask(newTestConfig(1), newTestFs(t, "1 2 3"), nil, &out).Run(ctx, inputPath)
	require.Equal(t, context.Canceled, errors.Cause(err))
	require.Empty(t, out.String())
}

func TestLogMetrics(t *testing.T) {
	defer logutil.SetLogger(zap.NewNop())
	core, logs := observer.New(zapcore.DebugLevel)
	logutil.SetLogger(zap.New(core))

	registry := prometheus.NewRegistry()
	RegisterMetrics(registry)

	var out bytes.Buffer
	_, err := NewTask(newTestConfig(1), newTestFs(t, "1 2 x"), nil, &out).Run(context.Background(), inputPath)
	require.NoError(t, err)

	LogMetrics(registry)
	names := make(map[string]struct{})
	for _, entry := range logs.FilterMessage("metric").All() {
		names[entry.ContextMap()["name"].(string)] = struct{}{}
	}
	require.Contains(t, names, "kthselect_select_total")
	require.Contains(t, names, "kthselect_select_partition_rounds")
	require.Contains(t, names, "kthselect_reader_values_total")
	require.Contains(t, names, "kthselect_reader_skipped_tokens_total")
	require.Equal(t, 1, logs.FilterMessage("selection finished").Len())
}
