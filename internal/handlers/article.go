package handlers

import (
	"errors"
	"net/http"

	"tagespresse/internal/logging"
	"tagespresse/internal/models"
	"tagespresse/internal/repository"
	"tagespresse/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles *repository.ArticleRepository
	comments *repository.CommentRepository
}

func NewArticleHandler(articles *repository.ArticleRepository, comments *repository.CommentRepository) *ArticleHandler {
	return &ArticleHandler{articles: articles, comments: comments}
}

// List renders the front page with every article, store order.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.FindAll()
	if err != nil {
		logging.Sugar.Errorw("list articles", "err", err)
		RenderError(c, http.StatusInternalServerError, "Artikel konnten nicht geladen werden.")
		return
	}

	fillCommentCounts(h.comments, articles)

	Render(c, http.StatusOK, "article/list.html", gin.H{
		"Articles": articles,
		"Title":    "Aktuelle Nachrichten",
	})
}

// fillCommentCounts 批量填充文章的评论数量
func fillCommentCounts(comments *repository.CommentRepository, articles []models.Article) {
	if len(articles) == 0 {
		return
	}

	ids := make([]uint, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}

	counts, err := comments.CountByArticle(ids)
	if err != nil {
		logging.Sugar.Warnw("fill comment counts", "err", err)
		return
	}

	for i := range articles {
		articles[i].CommentCount = counts[articles[i].ID]
	}
}

func (h *ArticleHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		RenderError(c, http.StatusNotFound, "Artikel nicht gefunden.")
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Artikel nicht gefunden.")
			return
		}
		logging.Sugar.Errorw("load article", "id", id, "err", err)
		RenderError(c, http.StatusInternalServerError, "Artikel konnte nicht geladen werden.")
		return
	}

	// Comments load here, not with the article
	comments, err := h.comments.ListForArticle(article.ID)
	if err != nil {
		logging.Sugar.Errorw("load comments", "article_id", article.ID, "err", err)
		RenderError(c, http.StatusInternalServerError, "Kommentare konnten nicht geladen werden.")
		return
	}

	Render(c, http.StatusOK, "article/detail.html", gin.H{
		"Article":        article,
		"ArticleContent": utils.RenderMarkdown(article.Content),
		"Comments":       comments,
		"Title":          article.Title,
	})
}

// CreateComment accepts a form-encoded comment and returns only the updated
// comment list fragment, for partial page replacement.
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	articleID := utils.StringToUint(c.PostForm("article_id"))
	text := utils.SanitizeText(c.PostForm("text"))
	user := utils.SanitizeText(c.PostForm("user"))

	if articleID == 0 || text == "" {
		c.String(http.StatusBadRequest, "article_id und text sind erforderlich")
		return
	}

	comment := models.Comment{
		User:      user,
		Text:      text,
		ArticleID: articleID,
	}
	if err := h.comments.Create(&comment); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.String(http.StatusNotFound, "Artikel nicht gefunden")
		case errors.Is(err, repository.ErrInvalid):
			c.String(http.StatusBadRequest, "article_id und text sind erforderlich")
		default:
			logging.Sugar.Errorw("create comment", "article_id", articleID, "err", err)
			c.String(http.StatusInternalServerError, "Kommentar konnte nicht gespeichert werden")
		}
		return
	}

	article, err := h.articles.FindByID(articleID)
	if err != nil {
		c.String(http.StatusNotFound, "Artikel nicht gefunden")
		return
	}

	comments, err := h.comments.ListForArticle(article.ID)
	if err != nil {
		logging.Sugar.Errorw("reload comments", "article_id", article.ID, "err", err)
		c.String(http.StatusInternalServerError, "Kommentare konnten nicht geladen werden")
		return
	}

	c.HTML(http.StatusOK, "article/comments.html", gin.H{
		"Article":  article,
		"Comments": comments,
	})
}
