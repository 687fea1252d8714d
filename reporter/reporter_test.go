// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ian-GL/gleam/ast"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	pos := ast.SourcePos{Filename: "a.gleam", Line: 3, Col: 7, Offset: 20}
	underlying := errors.New("unexpected token")
	err := Error(pos, underlying)

	assert.Equal(t, "a.gleam:3:7: unexpected token", err.Error())
	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, underlying)

	err = Errorf(pos, "expected %q", ")")
	assert.Equal(t, `a.gleam:3:7: expected ")"`, err.Error())
}

func TestHandlerAbortsByDefault(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	require.NoError(t, h.Error())

	pos := ast.SourcePos{Filename: "a.gleam", Line: 1, Col: 1}
	first := h.HandleErrorf(pos, "first")
	require.Error(t, first)
	assert.Equal(t, "a.gleam:1:1: first", first.Error())

	// Once aborted, later errors return the first one.
	second := h.HandleErrorf(pos, "second")
	assert.Equal(t, first, second)
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerContinues(t *testing.T) {
	t.Parallel()

	var (
		errs     []ErrorWithPos
		warnings []ErrorWithPos
	)
	h := NewHandler(NewReporter(
		func(err ErrorWithPos) error {
			errs = append(errs, err)
			return nil
		},
		func(err ErrorWithPos) {
			warnings = append(warnings, err)
		},
	))

	pos := ast.SourcePos{Filename: "a.gleam", Line: 2, Col: 1}
	require.NoError(t, h.HandleErrorf(pos, "one"))
	require.NoError(t, h.HandleErrorf(pos, "two"))
	h.HandleWarning(pos, errors.New("comment dropped"))

	assert.Len(t, errs, 2)
	assert.Len(t, warnings, 1)
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	called := false
	h := NewHandler(NewReporter(func(ErrorWithPos) error {
		called = true
		return nil
	}, nil))

	boom := errors.New("read failed")
	assert.Equal(t, boom, h.HandleError(boom))
	assert.False(t, called)
	assert.Equal(t, boom, h.Error())
}
