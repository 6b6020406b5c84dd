package router

import (
	"tagespresse/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, articleHandler *handlers.ArticleHandler) {
	r.GET("/", articleHandler.List)                   // 首页 - 文章列表
	r.GET("/article/:id", articleHandler.Detail)      // 文章详情页
	r.POST("/comments", articleHandler.CreateComment) // 发表评论，返回评论列表片段
}
