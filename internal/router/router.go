package router

import (
	"net/http"

	"github.com/stpnv0/SitterMatch/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateJob(c *ginext.Context)
	GetJob(c *ginext.Context)
	ListJobs(c *ginext.Context)
	UpdateJob(c *ginext.Context)
	CancelJob(c *ginext.Context)
	MatchJob(c *ginext.Context)
	GetCandidates(c *ginext.Context)
	SelectBabysitter(c *ginext.Context)

	AcceptRequest(c *ginext.Context)
	DeclineRequest(c *ginext.Context)
	GuardianApprove(c *ginext.Context)
	GuardianDecline(c *ginext.Context)
	GetPendingRequests(c *ginext.Context)

	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	StartBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	RateBooking(c *ginext.Context)

	GetCallStatus(c *ginext.Context)
	RetryCall(c *ginext.Context)
	TelephonyWebhook(c *ginext.Context)

	CreateParent(c *ginext.Context)
	GetParent(c *ginext.Context)
	CreateBabysitter(c *ginext.Context)
	GetBabysitter(c *ginext.Context)

	ListCities(c *ginext.Context)
	GetCity(c *ginext.Context)
	ListNeighborhoods(c *ginext.Context)
	CreateCity(c *ginext.Context)
	ListCommunityStyles(c *ginext.Context)
	CreateCommunityStyle(c *ginext.Context)
}

// InitRouter builds the route table. auth guards every /api route except the
// telephony webhook; pass nil to leave the API open.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// The IVR provider has no user token.
	router.POST("/api/telephony/webhook", h.TelephonyWebhook)

	var guards []ginext.HandlerFunc
	if auth != nil {
		guards = append(guards, auth)
	}

	parent := middleware.RequireRole(middleware.RoleParent)
	babysitter := middleware.RequireRole(middleware.RoleBabysitter)
	guardian := middleware.RequireRole(middleware.RoleGuardian)
	admin := middleware.RequireRole(middleware.RoleAdmin)

	api := router.Group("/api", guards...)
	{
		// Jobs
		api.POST("/jobs", parent, h.CreateJob)
		api.GET("/jobs", h.ListJobs)
		api.GET("/jobs/:id", h.GetJob)
		api.PATCH("/jobs/:id", parent, h.UpdateJob)
		api.POST("/jobs/:id/cancel", parent, h.CancelJob)
		api.POST("/jobs/:id/match", parent, h.MatchJob)
		api.GET("/jobs/:id/candidates", h.GetCandidates)
		api.POST("/jobs/:id/select", parent, h.SelectBabysitter)
		api.POST("/requests/:id/select", parent, h.SelectBabysitter)

		// Responses
		api.GET("/babysitters/:id/pending-requests", babysitter, h.GetPendingRequests)
		api.POST("/babysitters/requests/:candidateId/accept", babysitter, h.AcceptRequest)
		api.POST("/babysitters/requests/:candidateId/decline", babysitter, h.DeclineRequest)
		api.POST("/guardians/requests/:candidateId/approve", guardian, h.GuardianApprove)
		api.POST("/guardians/requests/:candidateId/decline", guardian, h.GuardianDecline)

		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/start", h.StartBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/rate", h.RateBooking)

		// Telephony
		api.GET("/telephony/call-status/:candidateId", h.GetCallStatus)
		api.POST("/telephony/retry/:candidateId", h.RetryCall)

		// Profiles
		api.POST("/parents", h.CreateParent)
		api.GET("/parents/:id", h.GetParent)
		api.POST("/babysitters", h.CreateBabysitter)
		api.GET("/babysitters/:id", h.GetBabysitter)

		// Catalog
		api.GET("/cities", h.ListCities)
		api.GET("/cities/:id", h.GetCity)
		api.GET("/cities/:id/neighborhoods", h.ListNeighborhoods)
		api.POST("/cities", admin, h.CreateCity)
		api.GET("/community-styles", h.ListCommunityStyles)
		api.POST("/community-styles", admin, h.CreateCommunityStyle)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
