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

// Package intreader reads the integers and the rank a selection runs on.
package intreader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/pingcap/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// RankPrompt is written before reading the rank interactively.
const RankPrompt = "k = ?\n> "

const maxTokenSize = 1 << 20

var (
	// ErrMalformedRank is returned when the rank token is not an integer.
	ErrMalformedRank = errors.Normalize("malformed rank %q", errors.RFCCodeText("KthSelect:Reader:ErrMalformedRank"))
	// ErrMissingRank is returned when the rank input ends before a token.
	ErrMissingRank = errors.Normalize("no rank was given", errors.RFCCodeText("KthSelect:Reader:ErrMissingRank"))
)

// wordSplitter splits like bufio.ScanWords, except that a word which does
// not fit in maxTokenSize is reported as one empty token and the rest of it
// is dropped, instead of failing the scan with bufio.ErrTooLong.
type wordSplitter struct {
	maxTokenSize int
	discarding   bool
}

func (w *wordSplitter) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if w.discarding {
		for i, width := 0, 0; i < len(data); i += width {
			var r rune
			r, width = utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && width == 1 && !atEOF && !utf8.FullRune(data[i:]) {
				// wait for the rest of the rune, it may be a space
				return i, nil, nil
			}
			if unicode.IsSpace(r) {
				w.discarding = false
				if i > 0 {
					return i, nil, nil
				}
				break
			}
		}
		if w.discarding {
			return len(data), nil, nil
		}
	}
	advance, token, err = bufio.ScanWords(data, atEOF)
	if advance == 0 && token == nil && err == nil && !atEOF && len(data) >= w.maxTokenSize {
		w.discarding = true
		return len(data), []byte{}, nil
	}
	return advance, token, err
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	splitter := &wordSplitter{maxTokenSize: maxTokenSize}
	scanner.Split(splitter.split)
	return scanner
}

// ReadInts reads whitespace separated integers from r. Tokens that are not
// integers are skipped; their count is returned alongside the values.
func ReadInts(r io.Reader) (vals []int, skipped int, err error) {
	scanner := newWordScanner(r)
	for scanner.Scan() {
		token := scanner.Text()
		if len(token) == 0 {
			skipped++
			logutil.Debug("skip oversized token", zap.Int("max-size", maxTokenSize))
			continue
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			skipped++
			logutil.Debug("skip malformed token", zap.String("token", token))
			continue
		}
		vals = append(vals, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, errors.Trace(err)
	}
	skippedTokensCounter.Add(float64(skipped))
	readValuesCounter.Add(float64(len(vals)))
	return vals, skipped, nil
}

// ReadFile reads whitespace separated integers from the file at path.
func ReadFile(fs afero.Fs, path string) ([]int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "open input file %s", path)
	}
	defer f.Close()

	vals, skipped, err := ReadInts(f)
	if err != nil {
		return nil, errors.Annotatef(err, "read input file %s", path)
	}
	if skipped > 0 {
		logutil.Warn("skipped malformed tokens in input file",
			zap.String("path", path), zap.Int("skipped", skipped))
	}
	logutil.Info("input file loaded", zap.String("path", path), zap.Int("values", len(vals)))
	return vals, nil
}

// PromptRank writes RankPrompt to out and reads one integer from in.
func PromptRank(in io.Reader, out io.Writer) (int, error) {
	if _, err := fmt.Fprint(out, RankPrompt); err != nil {
		return 0, errors.Trace(err)
	}
	scanner := newWordScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Trace(err)
		}
		return 0, ErrMissingRank.GenWithStackByArgs()
	}
	k, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, ErrMalformedRank.GenWithStackByArgs(scanner.Text())
	}
	return k, nil
}
