// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.Len(t, kindNames, numKinds)
	assert.Len(t, Kinds(), numKinds)
	for i, kind := range Kinds() {
		assert.Equal(t, Kind(i), kind)
	}
}

func TestKind_Name(t *testing.T) {
	assert.Equal(t, "Headers", Headers.Name())
	assert.Equal(t, "Data", Data.Name())
	assert.Equal(t, "Complete", Complete.Name())
	assert.Equal(t, "Failed", Failed.Name())
	assert.Equal(t, "Aborted", Aborted.Name())
	assert.Equal(t, "Aborted", Aborted.String())
}

func TestKind_Valid(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.Valid())
	}
	assert.False(t, Kind(-1).Valid())
	assert.False(t, kindSentinel.Valid())
	assert.False(t, Kind(42).Valid())
}
