package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/repository/postgres"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProjectRepository(testDB.DB)
	ctx := context.Background()

	t.Run("GetAll orders newest first", func(t *testing.T) {
		testDB.Truncate(t)

		first := testutil.NewProjectBuilder().WithName("older").Build(t, testDB.DB)
		second := testutil.NewProjectBuilder().WithName("newer").Build(t, testDB.DB)

		projects, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, second.ID, projects[0].ID)
		assert.Equal(t, first.ID, projects[1].ID)
	})

	t.Run("GetPage with offset and limit", func(t *testing.T) {
		testDB.Truncate(t)

		var ids []int64
		for i := 0; i < 5; i++ {
			p := testutil.NewProjectBuilder().WithName(fmt.Sprintf("p%d", i)).Build(t, testDB.DB)
			ids = append(ids, p.ID)
		}

		page, err := repo.GetPage(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		// Newest first, so offset 2 lands on the third-newest
		assert.Equal(t, ids[2], page[0].ID)
		assert.Equal(t, ids[1], page[1].ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("ExistsByName ignores case", func(t *testing.T) {
		testDB.Truncate(t)

		testutil.NewProjectBuilder().WithName("Portfolio Site").Build(t, testDB.DB)

		tests := []struct {
			name   string
			lookup string
			want   bool
		}{
			{name: "exact match", lookup: "Portfolio Site", want: true},
			{name: "different case", lookup: "PORTFOLIO site", want: true},
			{name: "no match", lookup: "Other Project", want: false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				exists, err := repo.ExistsByName(ctx, tt.lookup)
				require.NoError(t, err)
				assert.Equal(t, tt.want, exists)
			})
		}
	})

	t.Run("Update persists changes", func(t *testing.T) {
		testDB.Truncate(t)

		project := testutil.NewProjectBuilder().WithName("before").Build(t, testDB.DB)
		project.Name = "after"
		project.Image = "/uploads/projects/abc_img.png"

		require.NoError(t, repo.Update(ctx, project))

		got, err := repo.GetByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Name)
		assert.Equal(t, "/uploads/projects/abc_img.png", got.Image)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		testDB.Truncate(t)

		project := testutil.NewProjectBuilder().Build(t, testDB.DB)
		require.NoError(t, repo.Delete(ctx, project.ID))

		_, err := repo.GetByID(ctx, project.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetByIDs and DeleteByIDs skip unknown ids", func(t *testing.T) {
		testDB.Truncate(t)

		p1 := testutil.NewProjectBuilder().Build(t, testDB.DB)
		p2 := testutil.NewProjectBuilder().Build(t, testDB.DB)
		keep := testutil.NewProjectBuilder().Build(t, testDB.DB)

		found, err := repo.GetByIDs(ctx, []int64{p1.ID, p2.ID, 999999})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		require.NoError(t, repo.DeleteByIDs(ctx, []int64{p1.ID, p2.ID, 999999}))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		_, err = repo.GetByID(ctx, keep.ID)
		assert.NoError(t, err)
	})
}
