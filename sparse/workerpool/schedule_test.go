// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"static", Static},
		{"dynamic", Dynamic},
		{"guided", Guided},
		{"auto", Auto},
		{"GUIDED", Guided},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKind("runtime")
	assert.ErrorIs(t, err, ErrUnknownSchedule)
}

func TestScheduleString(t *testing.T) {
	assert.Equal(t, "guided chunk=16", Schedule{Kind: Guided, Chunk: 16}.String())
	assert.Equal(t, "static chunk=0", Schedule{}.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
