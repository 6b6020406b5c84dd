package repository

import (
	"path/filepath"
	"testing"

	"tagespresse/internal/db"
	"tagespresse/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func testArticle() *models.Article {
	return &models.Article{
		Title:    "Testartikel",
		Summary:  "Eine Zusammenfassung",
		Content:  "Der vollständige Inhalt.",
		Category: "Politik",
	}
}

func TestArticleCreateAssignsID(t *testing.T) {
	conn := openTestDB(t)
	repo := NewArticleRepository(conn)

	article := testArticle()
	require.NoError(t, repo.Create(article))
	assert.NotZero(t, article.ID)

	found, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Title, found.Title)
	assert.Equal(t, article.Summary, found.Summary)
	assert.Equal(t, article.Content, found.Content)
	assert.Equal(t, article.Category, found.Category)
}

func TestArticleCreateRejectsEmptyFields(t *testing.T) {
	conn := openTestDB(t)
	repo := NewArticleRepository(conn)

	cases := map[string]*models.Article{
		"title":    {Summary: "s", Content: "c", Category: "Sport"},
		"summary":  {Title: "t", Content: "c", Category: "Sport"},
		"content":  {Title: "t", Summary: "s", Category: "Sport"},
		"category": {Title: "t", Summary: "s", Content: "c"},
	}
	for name, article := range cases {
		err := repo.Create(article)
		assert.ErrorIs(t, err, ErrInvalid, "missing %s should be rejected", name)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestArticleFindByIDNotFound(t *testing.T) {
	conn := openTestDB(t)
	repo := NewArticleRepository(conn)

	_, err := repo.FindByID(999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleCreateBatchAndFindAll(t *testing.T) {
	conn := openTestDB(t)
	repo := NewArticleRepository(conn)

	batch := []*models.Article{testArticle(), testArticle(), testArticle()}
	batch[1].Title = "Zweiter Artikel"
	batch[2].Title = "Dritter Artikel"
	require.NoError(t, repo.CreateBatch(batch))

	for _, a := range batch {
		assert.NotZero(t, a.ID)
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	// store order is id order
	assert.True(t, all[0].ID < all[1].ID && all[1].ID < all[2].ID)
}

func TestCommentCreateDefaultsUser(t *testing.T) {
	conn := openTestDB(t)
	articles := NewArticleRepository(conn)
	comments := NewCommentRepository(conn)

	article := testArticle()
	require.NoError(t, articles.Create(article))

	comment := &models.Comment{Text: "hallo", ArticleID: article.ID}
	require.NoError(t, comments.Create(comment))
	assert.Equal(t, "Anonymous", comment.User)

	list, err := comments.ListForArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Anonymous", list[0].User)
}

func TestCommentCreateRequiresText(t *testing.T) {
	conn := openTestDB(t)
	articles := NewArticleRepository(conn)
	comments := NewCommentRepository(conn)

	article := testArticle()
	require.NoError(t, articles.Create(article))

	err := comments.Create(&models.Comment{User: "Bob", ArticleID: article.ID})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCommentCreateRequiresExistingArticle(t *testing.T) {
	conn := openTestDB(t)
	comments := NewCommentRepository(conn)

	err := comments.Create(&models.Comment{Text: "hallo", ArticleID: 999999})
	assert.ErrorIs(t, err, ErrNotFound)

	err = comments.Create(&models.Comment{Text: "hallo"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestListForArticleScopesToArticle(t *testing.T) {
	conn := openTestDB(t)
	articles := NewArticleRepository(conn)
	comments := NewCommentRepository(conn)

	first := testArticle()
	second := testArticle()
	second.Title = "Zweiter Artikel"
	require.NoError(t, articles.CreateBatch([]*models.Article{first, second}))

	require.NoError(t, comments.Create(&models.Comment{Text: "zum ersten", ArticleID: first.ID}))
	require.NoError(t, comments.Create(&models.Comment{Text: "zum zweiten", ArticleID: second.ID}))
	require.NoError(t, comments.Create(&models.Comment{Text: "noch einer", ArticleID: first.ID}))

	list, err := comments.ListForArticle(first.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, com := range list {
		assert.Equal(t, first.ID, com.ArticleID)
	}

	count, err := comments.CountForArticle(first.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCountByArticle(t *testing.T) {
	conn := openTestDB(t)
	articles := NewArticleRepository(conn)
	comments := NewCommentRepository(conn)

	first := testArticle()
	second := testArticle()
	second.Title = "Zweiter Artikel"
	require.NoError(t, articles.CreateBatch([]*models.Article{first, second}))

	require.NoError(t, comments.Create(&models.Comment{Text: "a", ArticleID: first.ID}))
	require.NoError(t, comments.Create(&models.Comment{Text: "b", ArticleID: first.ID}))

	counts, err := comments.CountByArticle([]uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[first.ID])
	assert.Zero(t, counts[second.ID])
}
