package repository

import (
	"errors"
	"fmt"

	"tagespresse/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals a lookup for an id that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalid signals an entity rejected before any write.
	ErrInvalid = errors.New("invalid record")
)

// ArticleRepository owns all Article reads and writes. Identity (id assignment)
// belongs to the store; callers never set ids.
type ArticleRepository struct {
	conn *gorm.DB
}

func NewArticleRepository(conn *gorm.DB) *ArticleRepository {
	return &ArticleRepository{conn: conn}
}

func (r *ArticleRepository) Create(article *models.Article) error {
	if err := validateArticle(article); err != nil {
		return err
	}
	if err := r.conn.Create(article).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// CreateBatch persists the articles in a single transaction. Ids are
// available on the passed slice afterwards.
func (r *ArticleRepository) CreateBatch(articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	for _, a := range articles {
		if err := validateArticle(a); err != nil {
			return err
		}
	}
	if err := r.conn.Create(articles).Error; err != nil {
		return fmt.Errorf("create articles: %w", err)
	}
	return nil
}

func (r *ArticleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.conn.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find article %d: %w", id, err)
	}
	return &article, nil
}

func (r *ArticleRepository) FindAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.conn.Order("id ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) Count() (int64, error) {
	var count int64
	if err := r.conn.Model(&models.Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

func validateArticle(article *models.Article) error {
	if article.Title == "" || article.Summary == "" || article.Content == "" || article.Category == "" {
		return fmt.Errorf("article requires title, summary, content and category: %w", ErrInvalid)
	}
	return nil
}

// CommentRepository owns all Comment reads and writes and enforces that every
// comment references an existing Article at creation time.
type CommentRepository struct {
	conn *gorm.DB
}

func NewCommentRepository(conn *gorm.DB) *CommentRepository {
	return &CommentRepository{conn: conn}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	if err := r.validate(comment); err != nil {
		return err
	}
	if comment.User == "" {
		comment.User = "Anonymous"
	}
	if err := r.conn.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// CreateBatch persists the comments in a single transaction. Unlike Create it
// trusts the caller on referential integrity and only defaults usernames.
func (r *CommentRepository) CreateBatch(comments []*models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	for _, c := range comments {
		if c.Text == "" {
			return fmt.Errorf("comment requires text: %w", ErrInvalid)
		}
		if c.User == "" {
			c.User = "Anonymous"
		}
	}
	if err := r.conn.Create(comments).Error; err != nil {
		return fmt.Errorf("create comments: %w", err)
	}
	return nil
}

// ListForArticle is the explicit lazy accessor from an Article to its
// Comments; nothing is preloaded elsewhere.
func (r *CommentRepository) ListForArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.conn.Where("article_id = ?", articleID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

// CountByArticle returns comment counts for many articles in one query.
func (r *CommentRepository) CountByArticle(articleIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}
	type countResult struct {
		ArticleID uint
		Count     int
	}
	var results []countResult
	if err := r.conn.Model(&models.Comment{}).
		Select("article_id, COUNT(*) as count").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	for _, res := range results {
		counts[res.ArticleID] = res.Count
	}
	return counts, nil
}

func (r *CommentRepository) CountForArticle(articleID uint) (int64, error) {
	var count int64
	if err := r.conn.Model(&models.Comment{}).Where("article_id = ?", articleID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count comments for article %d: %w", articleID, err)
	}
	return count, nil
}

func (r *CommentRepository) validate(comment *models.Comment) error {
	if comment.Text == "" {
		return fmt.Errorf("comment requires text: %w", ErrInvalid)
	}
	if comment.ArticleID == 0 {
		return fmt.Errorf("comment requires an article: %w", ErrInvalid)
	}
	var count int64
	if err := r.conn.Model(&models.Article{}).Where("id = ?", comment.ArticleID).Count(&count).Error; err != nil {
		return fmt.Errorf("check article %d: %w", comment.ArticleID, err)
	}
	if count == 0 {
		return fmt.Errorf("article %d: %w", comment.ArticleID, ErrNotFound)
	}
	return nil
}
