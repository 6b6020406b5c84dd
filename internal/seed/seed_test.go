package seed

import (
	"math/rand"
	"path/filepath"
	"testing"

	"tagespresse/internal/db"
	"tagespresse/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return conn
}

func newTestSeeder(conn *gorm.DB, source int64) (*Seeder, *repository.ArticleRepository, *repository.CommentRepository) {
	articles := repository.NewArticleRepository(conn)
	comments := repository.NewCommentRepository(conn)
	return New(articles, comments, rand.New(rand.NewSource(source)), zap.NewNop()), articles, comments
}

func TestRunSeedsWholeCatalog(t *testing.T) {
	conn := openTestDB(t)
	seeder, articles, comments := newTestSeeder(conn, 1)

	require.NoError(t, seeder.Run())

	count, err := articles.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(Catalog()), count)

	all, err := articles.FindAll()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, a := range all {
		seen[a.Category] = true
	}
	for _, cat := range Categories {
		assert.True(t, seen[cat], "category %s missing from seeded articles", cat)
	}

	// every article gets 2-5 random comments, plus at most one special each
	for _, a := range all {
		n, err := comments.CountForArticle(a.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(2), "article %q", a.Title)
		assert.LessOrEqual(t, n, int64(6), "article %q", a.Title)
	}
}

func TestRunSecondRunIsNoOp(t *testing.T) {
	conn := openTestDB(t)
	seeder, articles, comments := newTestSeeder(conn, 2)

	require.NoError(t, seeder.Run())
	before, err := articles.Count()
	require.NoError(t, err)

	firstIDs := make([]uint, 0)
	all, err := articles.FindAll()
	require.NoError(t, err)
	for _, a := range all {
		firstIDs = append(firstIDs, a.ID)
	}
	commentsBefore, err := comments.CountByArticle(firstIDs)
	require.NoError(t, err)

	require.NoError(t, seeder.Run())

	after, err := articles.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	commentsAfter, err := comments.CountByArticle(firstIDs)
	require.NoError(t, err)
	assert.Equal(t, commentsBefore, commentsAfter)
}

func TestRunDeterministicUnderFixedSeed(t *testing.T) {
	first := openTestDB(t)
	second := openTestDB(t)

	seederA, articlesA, _ := newTestSeeder(first, 42)
	seederB, articlesB, _ := newTestSeeder(second, 42)

	require.NoError(t, seederA.Run())
	require.NoError(t, seederB.Run())

	allA, err := articlesA.FindAll()
	require.NoError(t, err)
	allB, err := articlesB.FindAll()
	require.NoError(t, err)

	require.Equal(t, len(allA), len(allB))
	for i := range allA {
		assert.Equal(t, allA[i].Title, allB[i].Title, "shuffle order diverged at %d", i)
	}
}

func TestCatalogReturnsFreshInstances(t *testing.T) {
	a := Catalog()
	b := Catalog()
	require.Equal(t, len(a), len(b))
	a[0].Title = "geändert"
	assert.NotEqual(t, a[0].Title, b[0].Title)
}
