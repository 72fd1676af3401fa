// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyStateName(t *testing.T) {
	testCases := []struct {
		state ReadyState
		name  string
	}{
		{Unsent, "Unsent"},
		{Opened, "Opened"},
		{HeadersReceived, "HeadersReceived"},
		{Loading, "Loading"},
		{Done, "Done"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.name, testCase.state.Name())
			assert.Equal(t, testCase.name, testCase.state.String())
		})
	}
}

func TestStates(t *testing.T) {
	states := States()

	assert.Equal(t, numReadyStates, len(states))
	for i, state := range states {
		assert.Equal(t, ReadyState(i), state)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]ReadyState]bool{
		{Unsent, Opened}:           true,
		{Opened, HeadersReceived}:  true,
		{HeadersReceived, Loading}: true,
		{HeadersReceived, Done}:    true,
		{Loading, Done}:            true,
	}

	for _, from := range States() {
		for _, to := range States() {
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				assert.Equal(t, allowed[[2]ReadyState{from, to}], CanTransition(from, to))
			})
		}
	}
}

func TestCanAbort(t *testing.T) {
	for _, from := range States() {
		t.Run(from.Name(), func(t *testing.T) {
			assert.Equal(t, from != Done, CanAbort(from))
		})
	}
}

func TestStateForCode(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		for i, want := range States() {
			state, ok := StateForCode(i)

			assert.True(t, ok)
			assert.Equal(t, want, state)
		}
	})
	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []int{-1, numReadyStates, 100} {
			_, ok := StateForCode(code)

			assert.False(t, ok)
		}
	})
}
