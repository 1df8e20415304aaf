// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	PlaylistHandler     *handler.PlaylistHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TweetHandler        *handler.TweetHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = r.params.ErrorMiddleware.HandleHTTPError
	e.Use(r.params.LoggerMiddleware.Handle)

	authed := r.params.AuthMiddleware.Authenticate
	optional := r.params.AuthMiddleware.OptionalAuthenticate

	api := e.Group("/api/v1")

	api.GET("/healthcheck", handler.HealthCheck)

	users := api.Group("/users")
	{
		users.POST("/register", r.params.UserHandler.Register)
		users.POST("/login", r.params.UserHandler.Login)
		users.POST("/refresh-token", r.params.UserHandler.RefreshToken)
		users.POST("/logout", r.params.UserHandler.Logout, authed)
		users.POST("/change-password", r.params.UserHandler.ChangePassword, authed)
		users.GET("/current-user", r.params.UserHandler.CurrentUser, authed)
		users.PATCH("/update-account", r.params.UserHandler.UpdateAccount, authed)
		users.PATCH("/avatar", r.params.UserHandler.UpdateAvatar, authed)
		users.PATCH("/cover-image", r.params.UserHandler.UpdateCoverImage, authed)
		users.GET("/history", r.params.UserHandler.WatchHistory, authed)
		users.GET("/c/:username", r.params.UserHandler.ChannelProfile, optional)
		users.GET("/c/:username/qr", r.params.UserHandler.ChannelQR)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", r.params.VideoHandler.List)
		videos.POST("", r.params.VideoHandler.Publish, authed)
		videos.GET("/:videoId", r.params.VideoHandler.Get)
		videos.PATCH("/:videoId", r.params.VideoHandler.Update, authed)
		videos.DELETE("/:videoId", r.params.VideoHandler.Delete, authed)
		videos.PATCH("/toggle/publish/:videoId", r.params.VideoHandler.TogglePublish, authed)
		videos.POST("/:videoId/view", r.params.VideoHandler.RecordView, optional)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", r.params.CommentHandler.List)
		comments.POST("/:videoId", r.params.CommentHandler.Add, authed)
		comments.PATCH("/c/:commentId", r.params.CommentHandler.Update, authed)
		comments.DELETE("/c/:commentId", r.params.CommentHandler.Delete, authed)
	}

	likes := api.Group("/likes", authed)
	{
		likes.POST("/toggle/v/:videoId", r.params.LikeHandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", r.params.LikeHandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", r.params.LikeHandler.ToggleTweetLike)
		likes.GET("/videos", r.params.LikeHandler.LikedVideos)
	}

	playlist := api.Group("/playlist")
	{
		playlist.POST("", r.params.PlaylistHandler.Create, authed)
		playlist.GET("/:playlistId", r.params.PlaylistHandler.Get)
		playlist.GET("/user/:userId", r.params.PlaylistHandler.ListByUser)
		playlist.PATCH("/:playlistId", r.params.PlaylistHandler.Update, authed)
		playlist.DELETE("/:playlistId", r.params.PlaylistHandler.Delete, authed)
		playlist.PATCH("/add/:videoId/:playlistId", r.params.PlaylistHandler.AddVideo, authed)
		playlist.PATCH("/remove/:videoId/:playlistId", r.params.PlaylistHandler.RemoveVideo, authed)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", r.params.SubscriptionHandler.Toggle, authed)
		subscriptions.GET("/c/:channelId", r.params.SubscriptionHandler.Subscribers)
		subscriptions.GET("/u/:subscriberId", r.params.SubscriptionHandler.SubscribedChannels)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", r.params.TweetHandler.Create, authed)
		tweets.GET("/user/:userId", r.params.TweetHandler.ListByUser)
		tweets.PATCH("/:tweetId", r.params.TweetHandler.Update, authed)
		tweets.DELETE("/:tweetId", r.params.TweetHandler.Delete, authed)
	}

	dashboard := api.Group("/dashboard", authed)
	{
		dashboard.GET("/stats", r.params.DashboardHandler.Stats)
		dashboard.GET("/videos", r.params.DashboardHandler.Videos)
	}
}
