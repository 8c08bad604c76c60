package contacts

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func names(cs []Contact) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func newTestRegistry(t *testing.T, entries ...string) *Registry {
	t.Helper()
	r := NewRegistry(WithIDGenerator(&Sequence{}))
	for _, name := range entries {
		_, err := r.Add(name, "555-0100")
		require.NoError(t, err)
	}
	return r
}

func TestAddDistinctNames(t *testing.T) {
	r := NewRegistry()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		c, err := r.Add(fmt.Sprintf("Person %d", i), "123")
		require.NoError(t, err)
		require.False(t, seen[c.ID], "id %s issued twice", c.ID)
		seen[c.ID] = true
	}
	require.Equal(t, 50, r.Len())
}

func TestAddReturnsCreatedContact(t *testing.T) {
	r := newTestRegistry(t)
	c, err := r.Add("Ann", "123")
	require.NoError(t, err)
	require.Equal(t, Contact{ID: "1", Name: "Ann", Number: "123"}, c)

	got, ok := r.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, c, got)
}

func TestAddDuplicateNameLeavesRegistryUnchanged(t *testing.T) {
	r := newTestRegistry(t, "Ann", "Bob")
	before := r.Contacts()

	_, err := r.Add("Ann", "456")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateName))
	require.Contains(t, err.Error(), `"Ann"`)

	if diff := cmp.Diff(before, r.Contacts()); diff != "" {
		t.Fatalf("contacts changed after duplicate add (-before +after):\n%s", diff)
	}
}

func TestAddUniquenessIsCaseSensitive(t *testing.T) {
	r := newTestRegistry(t, "Ann")
	_, err := r.Add("ann", "456")
	require.NoError(t, err)
	require.Equal(t, []string{"Ann", "ann"}, names(r.Contacts()))
}

func TestAddRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name, number string
	}{
		{"", "123"},
		{"Ann", ""},
		{"", ""},
	}
	for _, tc := range tests {
		r := NewRegistry()
		_, err := r.Add(tc.name, tc.number)
		require.ErrorIs(t, err, ErrMissingField)
		require.Zero(t, r.Len())
	}
}

func TestDeleteUnknownID(t *testing.T) {
	r := newTestRegistry(t, "Ann", "Bob")
	before := r.Contacts()

	require.False(t, r.Delete("nope"))
	require.Equal(t, before, r.Contacts())
}

func TestDeletePreservesOrder(t *testing.T) {
	r := newTestRegistry(t, "Ann", "Bob", "Cid", "Dee")
	bob := r.Contacts()[1]

	require.True(t, r.Delete(bob.ID))
	require.Equal(t, 3, r.Len())
	require.Equal(t, []string{"Ann", "Cid", "Dee"}, names(r.Contacts()))

	_, ok := r.Get(bob.ID)
	require.False(t, ok)
	require.False(t, r.Delete(bob.ID))
}

func TestDeleteDoesNotAliasEarlierSnapshots(t *testing.T) {
	r := newTestRegistry(t, "Ann", "Bob", "Cid")
	snap := r.Visible()
	require.True(t, r.Delete(snap[0].ID))
	require.Equal(t, []string{"Ann", "Bob", "Cid"}, names(snap))
}

func TestVisibleEmptyFilterReturnsAll(t *testing.T) {
	r := newTestRegistry(t, "Marianne", "Bob", "Anna")
	require.Equal(t, "", r.Filter())
	require.Equal(t, []string{"Marianne", "Bob", "Anna"}, names(r.Visible()))
}

func TestVisibleFilterIsCaseInsensitiveSubstring(t *testing.T) {
	r := newTestRegistry(t, "Anna", "Bob", "Marianne")

	r.SetFilter("an")
	require.Equal(t, []string{"Anna", "Marianne"}, names(r.Visible()))

	r.SetFilter("AN")
	require.Equal(t, []string{"Anna", "Marianne"}, names(r.Visible()))

	r.SetFilter("zzz")
	require.Empty(t, r.Visible())

	r.SetFilter("")
	require.Len(t, r.Visible(), 3)
}

func TestVisibleFilterMatchesCyrillic(t *testing.T) {
	r := newTestRegistry(t, "Анна", "Борис")
	r.SetFilter("анн")
	require.Equal(t, []string{"Анна"}, names(r.Visible()))
}

func TestFilterDoesNotChangeContacts(t *testing.T) {
	r := newTestRegistry(t, "Anna", "Bob")
	r.SetFilter("bob")
	require.Len(t, r.Contacts(), 2)
	require.Equal(t, 2, r.Len())
}

func TestNameReusableAfterDelete(t *testing.T) {
	r := newTestRegistry(t)

	ann, err := r.Add("Ann", "123")
	require.NoError(t, err)

	_, err = r.Add("Ann", "456")
	require.ErrorIs(t, err, ErrDuplicateName)
	require.Equal(t, 1, r.Len())
	require.Equal(t, "123", r.Contacts()[0].Number)

	require.True(t, r.Delete(ann.ID))
	require.Zero(t, r.Len())

	again, err := r.Add("Ann", "789")
	require.NoError(t, err)
	require.NotEqual(t, ann.ID, again.ID)
	require.Equal(t, "789", again.Number)
}

func TestConcurrentAddSameNameAdmitsOne(t *testing.T) {
	r := NewRegistry()
	const workers = 32

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Add("Ann", fmt.Sprint(i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicateName):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, workers-1, dup)
	require.Equal(t, 1, r.Len())
}
