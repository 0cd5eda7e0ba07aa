package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

func strPtr(s string) *string { return &s }

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func TestNewOrganizationStore(t *testing.T) {
	st := NewOrganizationStore()
	require.NotNil(t, st)
}

func TestOrganizationStore_Create(t *testing.T) {
	t.Run("create generates id and timestamps", func(t *testing.T) {
		st := NewOrganizationStore()
		ctx := context.Background()

		org, err := st.Create(ctx, models.OrganizationCreate{Name: "Lab"})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, org.ID)
		require.Equal(t, "Lab", org.Name)
		require.Nil(t, org.Description)
		require.False(t, org.CreatedAt.IsZero())
		require.Equal(t, org.CreatedAt, org.UpdatedAt)
	})

	t.Run("create then get returns input plus timestamps", func(t *testing.T) {
		st := NewOrganizationStore()
		st.now = fixedClock(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
		ctx := context.Background()

		in := models.OrganizationCreate{
			ID:          uuid.New(),
			Name:        "Quantum AI Research Lab",
			Description: strPtr("A lab focusing on quantum computing."),
		}

		_, err := st.Create(ctx, in)
		require.NoError(t, err)

		got, err := st.Get(ctx, in.ID)
		require.NoError(t, err)
		require.Equal(t, &models.Organization{
			OrganizationBase: in,
			CreatedAt:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}, got)
	})

	t.Run("create duplicate organization returns error", func(t *testing.T) {
		st := NewOrganizationStore()
		ctx := context.Background()

		id := uuid.New()
		_, err := st.Create(ctx, models.OrganizationCreate{ID: id, Name: "first"})
		require.NoError(t, err)

		_, err = st.Create(ctx, models.OrganizationCreate{ID: id, Name: "second"})
		require.Error(t, err)
		require.Equal(t, store.ErrOrganizationAlreadyExists, err)

		got, err := st.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "first", got.Name)

		all, err := st.List(ctx, store.OrganizationFilter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}

func TestOrganizationStore_Get(t *testing.T) {
	t.Run("get nonexistent organization returns error", func(t *testing.T) {
		st := NewOrganizationStore()

		_, err := st.Get(context.Background(), uuid.New())
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("get returns copy of organization", func(t *testing.T) {
		st := NewOrganizationStore()
		ctx := context.Background()

		org, err := st.Create(ctx, models.OrganizationCreate{Name: "Lab", Description: strPtr("original")})
		require.NoError(t, err)

		got, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		got.Name = "modified"
		*got.Description = "modified"

		again, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		require.Equal(t, "Lab", again.Name)
		require.Equal(t, "original", *again.Description)
	})
}

func TestOrganizationStore_List(t *testing.T) {
	st := NewOrganizationStore()
	ctx := context.Background()

	names := []string{"Lab", "Studio", "Lab"}
	var created []*models.Organization
	for _, name := range names {
		org, err := st.Create(ctx, models.OrganizationCreate{Name: name})
		require.NoError(t, err)
		created = append(created, org)
	}

	t.Run("no filters returns everything in creation order", func(t *testing.T) {
		all, err := st.List(ctx, store.OrganizationFilter{})
		require.NoError(t, err)
		require.Equal(t, created, all)
	})

	t.Run("name filter", func(t *testing.T) {
		labs, err := st.List(ctx, store.OrganizationFilter{Name: strPtr("Lab")})
		require.NoError(t, err)
		require.Equal(t, []*models.Organization{created[0], created[2]}, labs)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		none, err := st.List(ctx, store.OrganizationFilter{Name: strPtr("Nope")})
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)
	})
}

func TestOrganizationStore_Update(t *testing.T) {
	t.Run("update only changes present fields", func(t *testing.T) {
		st := NewOrganizationStore()
		st.now = fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		ctx := context.Background()

		org, err := st.Create(ctx, models.OrganizationCreate{Name: "Lab", Description: strPtr("old")})
		require.NoError(t, err)

		updated, err := st.Update(ctx, org.ID, models.OrganizationUpdate{Description: models.Some("x")})
		require.NoError(t, err)
		require.Equal(t, "Lab", updated.Name)
		require.Equal(t, "x", *updated.Description)
		require.Equal(t, org.CreatedAt, updated.CreatedAt)
		require.True(t, updated.UpdatedAt.After(org.UpdatedAt))

		got, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("explicit null clears description", func(t *testing.T) {
		st := NewOrganizationStore()
		ctx := context.Background()

		org, err := st.Create(ctx, models.OrganizationCreate{Name: "Lab", Description: strPtr("old")})
		require.NoError(t, err)

		updated, err := st.Update(ctx, org.ID, models.OrganizationUpdate{Description: models.Null[string]()})
		require.NoError(t, err)
		require.Nil(t, updated.Description)
		require.Equal(t, "Lab", updated.Name)
	})

	t.Run("update nonexistent organization returns error", func(t *testing.T) {
		st := NewOrganizationStore()

		_, err := st.Update(context.Background(), uuid.New(), models.OrganizationUpdate{Name: models.Some("x")})
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
	})
}
