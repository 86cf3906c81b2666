package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/fluxlist/internal/action"
	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/dispatcher"
	"github.com/dshills/fluxlist/internal/item"
	"github.com/dshills/fluxlist/internal/store"
)

type fixture struct {
	store   *store.ListStore
	creator *action.Creator
	screen  *backend.NullBackend
	view    *ListView
}

func newFixture(t *testing.T, width, height int) *fixture {
	t.Helper()

	s := store.New(nil)
	d := dispatcher.NewWithDefaults()
	require.NoError(t, d.Register(s.Handle))
	c := action.NewCreator(d, item.NewCounterIDs())

	screen := backend.NewNullBackend(width, height)
	require.NoError(t, screen.Init())

	return &fixture{
		store:   s,
		creator: c,
		screen:  screen,
		view:    New(s, c, screen, DefaultOptions(), nil),
	}
}

func TestListView_MountRendersAndSubscribes(t *testing.T) {
	f := newFixture(t, 30, 10)
	assert.Equal(t, StateCreated, f.view.State())

	require.NoError(t, f.view.Mount())

	assert.Equal(t, StateMounted, f.view.State())
	assert.Equal(t, 1, f.store.Listeners())
	assert.Equal(t, 1, f.view.Renders())
	assert.Equal(t, "Items (0)", f.screen.Line(0))
	assert.Equal(t, "[ New Item ]", f.screen.Line(2))

	// A second mount is a no-op.
	require.NoError(t, f.view.Mount())
	assert.Equal(t, 1, f.store.Listeners())
}

func TestListView_ClickAddsItemAndRerenders(t *testing.T) {
	f := newFixture(t, 30, 10)
	require.NoError(t, f.view.Mount())

	require.NoError(t, f.view.Click())

	assert.Equal(t, []item.Item{{ID: "1", Name: "Marco"}}, f.store.GetAll())
	assert.Equal(t, 2, f.view.Renders())
	assert.Equal(t, []string{
		"Items (1)",
		"",
		"• Marco",
		"",
		"[ New Item ]",
	}, f.screen.Lines()[:5])
}

func TestListView_EntriesKeyedByID(t *testing.T) {
	f := newFixture(t, 30, 10)
	require.NoError(t, f.view.Mount())

	f.creator.AddNamed("A")
	f.creator.AddNamed("B")
	first := f.view.Entries()
	f.creator.AddNamed("C")
	second := f.view.Entries()

	assert.Equal(t, []Entry{{Key: "1", Label: "A"}, {Key: "2", Label: "B"}}, first)
	assert.Equal(t, first, second[:2])
	assert.Equal(t, Entry{Key: "3", Label: "C"}, second[2])
}

func TestListView_UnmountReleasesSubscription(t *testing.T) {
	f := newFixture(t, 30, 10)
	require.NoError(t, f.view.Mount())
	require.NoError(t, f.view.Click())
	renders := f.view.Renders()

	f.view.Unmount()

	assert.Equal(t, StateUnmounted, f.view.State())
	assert.Equal(t, 0, f.store.Listeners())

	f.creator.AddNamed("after")
	assert.Equal(t, renders, f.view.Renders())
	assert.Equal(t, 2, f.store.Len())

	assert.ErrorIs(t, f.view.Mount(), ErrUnmounted)
	assert.ErrorIs(t, f.view.Click(), ErrUnmounted)

	// Unmounting twice is harmless.
	f.view.Unmount()
	assert.Equal(t, StateUnmounted, f.view.State())
}

func TestListView_UnmountBeforeMount(t *testing.T) {
	f := newFixture(t, 30, 10)

	f.view.Unmount()

	assert.Equal(t, StateUnmounted, f.view.State())
	assert.ErrorIs(t, f.view.Mount(), ErrUnmounted)
}

func TestListView_ClickBeforeMount(t *testing.T) {
	f := newFixture(t, 30, 10)

	assert.ErrorIs(t, f.view.Click(), ErrNotMounted)
	assert.Equal(t, 0, f.store.Len())
}

func TestListView_HitButton(t *testing.T) {
	f := newFixture(t, 30, 10)
	require.NoError(t, f.view.Mount())
	require.NoError(t, f.view.Click())

	assert.True(t, f.view.HitButton(0, 4))
	assert.True(t, f.view.HitButton(11, 4))
	assert.False(t, f.view.HitButton(12, 4))
	assert.False(t, f.view.HitButton(0, 2))
}

func TestListView_Overflow(t *testing.T) {
	f := newFixture(t, 30, 6)
	require.NoError(t, f.view.Mount())
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		f.creator.AddNamed(n)
	}

	assert.Equal(t, []string{
		"Items (5)",
		"",
		"… 4 earlier",
		"• E",
		"",
		"[ New Item ]",
	}, f.screen.Lines())
	assert.True(t, f.view.HitButton(0, 5))
}

func TestListView_CustomOptions(t *testing.T) {
	s := store.New(nil)
	d := dispatcher.NewWithDefaults()
	require.NoError(t, d.Register(s.Handle))
	screen := backend.NewNullBackend(12, 5)
	require.NoError(t, screen.Init())

	v := New(s, action.NewCreator(d, nil), screen, Options{
		Title:       "Crew",
		ButtonLabel: "Add",
		NewItemName: "Polo Marco Polo",
	}, nil)
	require.NoError(t, v.Mount())
	require.NoError(t, v.Click())

	assert.Equal(t, "Crew (1)", screen.Line(0))
	assert.Equal(t, "• Polo Marc…", screen.Line(2))
	assert.Equal(t, "[ Add ]", screen.Line(4))
}

func TestListView_NilScreenStillCounts(t *testing.T) {
	s := store.New(nil)
	d := dispatcher.NewWithDefaults()
	require.NoError(t, d.Register(s.Handle))
	v := New(s, action.NewCreator(d, nil), nil, DefaultOptions(), nil)

	require.NoError(t, v.Mount())
	require.NoError(t, v.Click())

	assert.Equal(t, 2, v.Renders())
	assert.False(t, v.HitButton(0, 0))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "mounted", StateMounted.String())
	assert.Equal(t, "unmounted", StateUnmounted.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 3, "abc"},
		{"Marco Polo", 6, "Marco…"},
		{"世界世界", 5, "世界…"},
		{"x", 0, ""},
		{"abc", 1, "…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.width), "truncate(%q, %d)", tt.in, tt.width)
	}
}
