package item

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIDs_Monotonic(t *testing.T) {
	ids := NewCounterIDs()

	assert.Equal(t, "1", ids.Next())
	assert.Equal(t, "2", ids.Next())
	assert.Equal(t, "3", ids.Next())
}

func TestCounterIDs_ObserveSkipsAssigned(t *testing.T) {
	ids := NewCounterIDs()
	assert.Equal(t, "1", ids.Next())

	for _, seen := range []string{"5", "3", "abc", "07", "-2", ""} {
		ids.Observe(seen)
	}

	assert.Equal(t, "6", ids.Next())
	assert.Equal(t, "7", ids.Next())
}

func TestUUIDs_UniqueAndParseable(t *testing.T) {
	var gen UUIDs
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := gen.Next()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewIDGenerator(t *testing.T) {
	tests := []struct {
		strategy string
		wantType IDGenerator
		wantErr  bool
	}{
		{"", &CounterIDs{}, false},
		{StrategyCounter, &CounterIDs{}, false},
		{StrategyUUID, UUIDs{}, false},
		{"snowflake", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			gen, err := NewIDGenerator(tt.strategy)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownIDStrategy)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, gen)
		})
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "Marco#7", Item{ID: "7", Name: "Marco"}.String())
}
