// ABOUTME: Tests for collection reconciliation against a fake source.
// ABOUTME: Covers echo append, in-place update, removal, and stale discard.
package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func (i item) EntityID() int { return i.ID }

// fakeSource answers from canned slices and lets tests hook each call.
type fakeSource struct {
	listed   []item
	listErr  error
	onCreate func(item) (item, error)
	onUpdate func(int, item) (item, error)
	onDelete func(int) error
}

func (f *fakeSource) List(ctx context.Context) ([]item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]item, len(f.listed))
	copy(out, f.listed)
	return out, nil
}

func (f *fakeSource) Create(ctx context.Context, draft item) (item, error) {
	return f.onCreate(draft)
}

func (f *fakeSource) Update(ctx context.Context, id int, it item) (item, error) {
	return f.onUpdate(id, it)
}

func (f *fakeSource) Delete(ctx context.Context, id int) error {
	return f.onDelete(id)
}

func loaded(t *testing.T, src *fakeSource) *Collection[item] {
	t.Helper()
	c := NewCollection[item](src)
	_, err := c.Load(context.Background())
	require.NoError(t, err)
	return c
}

func TestLoadReplacesInServerOrder(t *testing.T) {
	src := &fakeSource{listed: []item{{3, "c"}, {1, "a"}, {2, "b"}}}
	c := loaded(t, src)

	got := c.Items()
	require.Len(t, got, 3)
	assert.Equal(t, []item{{3, "c"}, {1, "a"}, {2, "b"}}, got)
}

func TestLoadErrorKeepsItems(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}}}
	c := loaded(t, src)

	src.listErr = errors.New("boom")
	_, err := c.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []item{{1, "a"}}, c.Items())
}

func TestCreateAppendsServerEcho(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}}}
	src.onCreate = func(draft item) (item, error) {
		draft.ID = 99
		return draft, nil
	}
	c := loaded(t, src)

	created, err := c.Create(context.Background(), item{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, 99, created.ID)

	got := c.Items()
	require.Len(t, got, 2)
	assert.Equal(t, item{99, "new"}, got[1], "the echo, not the draft, is appended")
}

func TestCreateErrorLeavesItems(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}}}
	src.onCreate = func(item) (item, error) {
		return item{}, errors.New("boom")
	}
	c := loaded(t, src)

	_, err := c.Create(context.Background(), item{Name: "new"})
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}, {2, "b"}, {3, "c"}}}
	src.onUpdate = func(id int, it item) (item, error) {
		return it, nil
	}
	c := loaded(t, src)

	_, err := c.Update(context.Background(), 2, item{2, "renamed"})
	require.NoError(t, err)

	got := c.Items()
	assert.Equal(t, []item{{1, "a"}, {2, "renamed"}, {3, "c"}}, got,
		"updated element keeps its position")
}

func TestUpdateMissingIDNotReinserted(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}}}
	src.onUpdate = func(id int, it item) (item, error) {
		return it, nil
	}
	c := loaded(t, src)

	updated, err := c.Update(context.Background(), 7, item{7, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, item{7, "ghost"}, updated)
	assert.Equal(t, []item{{1, "a"}}, c.Items())
}

func TestRemoveFiltersOnlyTarget(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}, {2, "b"}, {3, "c"}}}
	src.onDelete = func(id int) error { return nil }
	c := loaded(t, src)

	require.NoError(t, c.Remove(context.Background(), 2))
	assert.Equal(t, []item{{1, "a"}, {3, "c"}}, c.Items())
}

func TestRemoveErrorLeavesItems(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}, {2, "b"}}}
	src.onDelete = func(id int) error { return errors.New("boom") }
	c := loaded(t, src)

	assert.Error(t, c.Remove(context.Background(), 2))
	assert.Equal(t, 2, c.Len())
}

func TestGet(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}, {2, "b"}}}
	c := loaded(t, src)

	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = c.Get(42)
	assert.False(t, ok)
}

func TestStaleMutationResponseDiscarded(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}}}
	c := loaded(t, src)

	// The create response arrives after a newer Load has run. The caller
	// still gets the echo, but the held items reflect the reload.
	src.onCreate = func(draft item) (item, error) {
		src.listed = []item{{1, "a"}, {5, "fresh"}}
		_, err := c.Load(context.Background())
		require.NoError(t, err)
		draft.ID = 99
		return draft, nil
	}

	created, err := c.Create(context.Background(), item{Name: "slow"})
	require.NoError(t, err)
	assert.Equal(t, 99, created.ID)
	assert.Equal(t, []item{{1, "a"}, {5, "fresh"}}, c.Items(),
		"response issued under an older generation is not applied")
}

func TestStaleRemoveResponseDiscarded(t *testing.T) {
	src := &fakeSource{listed: []item{{1, "a"}, {2, "b"}}}
	c := loaded(t, src)

	src.onDelete = func(id int) error {
		_, err := c.Load(context.Background())
		require.NoError(t, err)
		return nil
	}

	require.NoError(t, c.Remove(context.Background(), 2))
	assert.Equal(t, []item{{1, "a"}, {2, "b"}}, c.Items())
}
