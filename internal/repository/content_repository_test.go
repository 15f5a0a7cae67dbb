package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
	"github.com/1234-ad/intelligent-content-orchestrator/internal/repository"
)

// allTables lists every table in dependency order for truncation.
var allTables = []string{"analysis_results", "content_views", "content_tags", "content_versions", "tags", "contents"}

// newDraft builds a minimal draft content ready for Create.
func newDraft(title string) *domain.Content {
	return &domain.Content{
		ID:       uuid.New().String(),
		Title:    title,
		Body:     "Body of " + title,
		Status:   domain.StatusDraft,
		Version:  1,
		AuthorID: "author-1",
		Metadata: map[string]any{},
	}
}

func TestPostgresContentRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContentRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and fetch round trip", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("First Post")
		c.Tags = []string{"go", "testing"}
		c.Metadata = map[string]any{"source": "editor"}

		require.NoError(t, repo.Create(ctx, c))
		assert.False(t, c.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, "First Post", got.Title)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.Equal(t, 1, got.Version)
		assert.Equal(t, []string{"go", "testing"}, got.Tags)
		assert.Equal(t, "editor", got.Metadata["source"])
		assert.Equal(t, 0, got.Views)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("tags are shared across contents", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		a := newDraft("A")
		a.Tags = []string{"shared"}
		b := newDraft("B")
		b.Tags = []string{"shared"}

		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		var count int
		err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM tags").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("get unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		_, err := repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("get soft deleted id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Gone")
		require.NoError(t, repo.Create(ctx, c))

		_, err := repo.SoftDelete(ctx, c.ID)
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresContentRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContentRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T, n int) []*domain.Content {
		t.Helper()
		items := make([]*domain.Content, n)
		for i := 0; i < n; i++ {
			c := newDraft(seedTitle(i))
			require.NoError(t, repo.Create(ctx, c))
			items[i] = c
		}
		return items
	}

	t.Run("paginates and counts the full match set", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)
		seed(t, 5)

		items, total, err := repo.List(ctx, domain.ListFilter{
			Page: 1, Limit: 2, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, items, 2)

		items, total, err = repo.List(ctx, domain.ListFilter{
			Page: 3, Limit: 2, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, items, 1)
	})

	t.Run("filters by status", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)
		items := seed(t, 3)

		_, err := repo.Publish(ctx, items[0].ID)
		require.NoError(t, err)

		published, total, err := repo.List(ctx, domain.ListFilter{
			Status: string(domain.StatusPublished), Page: 1, Limit: 10, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, published, 1)
		assert.Equal(t, items[0].ID, published[0].ID)
	})

	t.Run("default listing excludes soft deleted rows", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)
		items := seed(t, 3)

		_, err := repo.SoftDelete(ctx, items[1].ID)
		require.NoError(t, err)

		listed, total, err := repo.List(ctx, domain.ListFilter{
			Page: 1, Limit: 10, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, c := range listed {
			assert.NotEqual(t, items[1].ID, c.ID)
		}
	})

	t.Run("filters by author", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)
		seed(t, 2)

		other := newDraft("Other Author Post")
		other.AuthorID = "author-2"
		require.NoError(t, repo.Create(ctx, other))

		listed, total, err := repo.List(ctx, domain.ListFilter{
			AuthorID: "author-2", Page: 1, Limit: 10, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, listed, 1)
		assert.Equal(t, other.ID, listed[0].ID)
	})

	t.Run("substring query matches title and body case insensitively", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		match := newDraft("Kubernetes Deep Dive")
		require.NoError(t, repo.Create(ctx, match))
		bodyMatch := newDraft("Unrelated Title")
		bodyMatch.Body = "all about KUBERNETES networking"
		require.NoError(t, repo.Create(ctx, bodyMatch))
		miss := newDraft("Cooking Notes")
		require.NoError(t, repo.Create(ctx, miss))

		_, total, err := repo.List(ctx, domain.ListFilter{
			Query: "kubernetes", Page: 1, Limit: 10, SortBy: "created_at", SortDir: domain.SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("sorts ascending by title", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		for _, title := range []string{"banana", "apple", "cherry"} {
			require.NoError(t, repo.Create(ctx, newDraft(title)))
		}

		listed, _, err := repo.List(ctx, domain.ListFilter{
			Page: 1, Limit: 10, SortBy: "title", SortDir: domain.SortAsc,
		})
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "apple", listed[0].Title)
		assert.Equal(t, "banana", listed[1].Title)
		assert.Equal(t, "cherry", listed[2].Title)
	})
}

func seedTitle(i int) string {
	return "Post " + string(rune('A'+i))
}

func TestPostgresContentRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContentRepository(testDB.Pool)
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("bumps version and snapshots the pre-image", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Original Title")
		require.NoError(t, repo.Create(ctx, c))

		updated, err := repo.Update(ctx, c.ID, domain.UpdateInput{
			Title: strPtr("New Title"),
		}, "editor-1")
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, 2, updated.Version)

		versions, err := repo.ListVersions(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, 1, versions[0].Version)
		assert.Equal(t, "Original Title", versions[0].Title)
		assert.Equal(t, "editor-1", versions[0].CreatedBy)
	})

	t.Run("versions accumulate newest first", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("v1")
		require.NoError(t, repo.Create(ctx, c))

		_, err := repo.Update(ctx, c.ID, domain.UpdateInput{Title: strPtr("v2")}, "editor-1")
		require.NoError(t, err)
		_, err = repo.Update(ctx, c.ID, domain.UpdateInput{Title: strPtr("v3")}, "editor-2")
		require.NoError(t, err)

		versions, err := repo.ListVersions(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, 2, versions[0].Version)
		assert.Equal(t, "v2", versions[0].Title)
		assert.Equal(t, 1, versions[1].Version)
		assert.Equal(t, "v1", versions[1].Title)
	})

	t.Run("replaces tags when provided", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Tagged")
		c.Tags = []string{"old-a", "old-b"}
		require.NoError(t, repo.Create(ctx, c))

		updated, err := repo.Update(ctx, c.ID, domain.UpdateInput{
			Tags: []string{"fresh"},
		}, "editor-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, updated.Tags)
	})

	t.Run("keeps tags when input omits them", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Tagged")
		c.Tags = []string{"keep"}
		require.NoError(t, repo.Create(ctx, c))

		updated, err := repo.Update(ctx, c.ID, domain.UpdateInput{
			Body: strPtr("new body"),
		}, "editor-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, updated.Tags)
	})

	t.Run("update of missing or deleted content returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		_, err := repo.Update(ctx, uuid.New().String(), domain.UpdateInput{Title: strPtr("x")}, "editor-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		c := newDraft("Deleted")
		require.NoError(t, repo.Create(ctx, c))
		_, err = repo.SoftDelete(ctx, c.ID)
		require.NoError(t, err)

		_, err = repo.Update(ctx, c.ID, domain.UpdateInput{Title: strPtr("x")}, "editor-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// No snapshot may be written for a rejected update.
		var count int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM content_versions").Scan(&count))
		assert.Equal(t, 0, count)
	})
}

func TestPostgresContentRepository_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContentRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("publish stamps published_at", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("To Publish")
		require.NoError(t, repo.Create(ctx, c))

		published, err := repo.Publish(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, published.Status)
		require.NotNil(t, published.PublishedAt)
	})

	t.Run("publish unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		_, err := repo.Publish(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("soft delete keeps the row", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Ephemeral")
		require.NoError(t, repo.Create(ctx, c))

		deleted, err := repo.SoftDelete(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDeleted, deleted.Status)
		require.NotNil(t, deleted.DeletedAt)

		var count int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM contents").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("soft delete twice returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Once")
		require.NoError(t, repo.Create(ctx, c))

		_, err := repo.SoftDelete(ctx, c.ID)
		require.NoError(t, err)
		_, err = repo.SoftDelete(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("record view bumps counter and appends record", func(t *testing.T) {
		testDB.TruncateTables(t, allTables...)

		c := newDraft("Popular")
		require.NoError(t, repo.Create(ctx, c))

		require.NoError(t, repo.RecordView(ctx, c.ID, "viewer-1"))
		require.NoError(t, repo.RecordView(ctx, c.ID, ""))

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Views)

		var anon int
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM content_views WHERE viewer_id IS NULL").Scan(&anon))
		assert.Equal(t, 1, anon)
	})
}
