// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"krvt/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HotspotHandler     *handler.HotspotHandler
	EventHandler       *handler.EventHandler
	ParticipantHandler *handler.ParticipantHandler
	RewardHandler      *handler.RewardHandler
	TrendHandler       *handler.TrendHandler
	HandbookHandler    *handler.HandbookHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	hotspotHandler     *handler.HotspotHandler
	eventHandler       *handler.EventHandler
	participantHandler *handler.ParticipantHandler
	rewardHandler      *handler.RewardHandler
	trendHandler       *handler.TrendHandler
	handbookHandler    *handler.HandbookHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		hotspotHandler:     params.HotspotHandler,
		eventHandler:       params.EventHandler,
		participantHandler: params.ParticipantHandler,
		rewardHandler:      params.RewardHandler,
		trendHandler:       params.TrendHandler,
		handbookHandler:    params.HandbookHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	hotspotGroup := e.Group("/hotspots")
	{
		hotspotGroup.GET("", r.hotspotHandler.ListHotspots)
		hotspotGroup.POST("", r.hotspotHandler.AddHotspot)
		hotspotGroup.GET("/overview", r.hotspotHandler.Overview)
		hotspotGroup.PATCH("/:id/level", r.hotspotHandler.SetLevel)
		hotspotGroup.DELETE("/:id", r.hotspotHandler.RemoveHotspot)
	}

	eventGroup := e.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.ListEvents)
		eventGroup.POST("", r.eventHandler.CreateEvent)
		eventGroup.POST("/:id/attendance", r.eventHandler.ToggleAttendance)
		eventGroup.POST("/:id/award", r.eventHandler.AwardPoints)
	}

	participantGroup := e.Group("/participants")
	{
		participantGroup.GET("", r.participantHandler.ListParticipants)
		participantGroup.POST("", r.participantHandler.AddParticipant)
	}
	e.GET("/leaderboard", r.participantHandler.Leaderboard)

	rewardGroup := e.Group("/rewards")
	{
		rewardGroup.GET("", r.rewardHandler.ListRewards)
		rewardGroup.POST("", r.rewardHandler.AddReward)
		rewardGroup.POST("/:id/redeem", r.rewardHandler.Redeem)
	}

	trendGroup := e.Group("/trends")
	{
		trendGroup.GET("", r.trendHandler.Overview)
		trendGroup.POST("/simulate", r.trendHandler.SimulateDay)
	}

	alertGroup := e.Group("/alerts")
	{
		alertGroup.GET("/weather", r.trendHandler.WeatherAlert)
		alertGroup.PUT("/weather", r.trendHandler.SetWeatherAlert)
	}

	e.GET("/handbook", r.handbookHandler.Handbook)
}
