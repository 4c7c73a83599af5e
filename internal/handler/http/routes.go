package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/happytails/happytails/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/mfa/login-verify", h.mfaLoginVerify)
	})

	// routes behind a session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/api/me", h.me)
		r.Post("/api/logout", h.logout)

		r.Post("/api/mfa/setup", h.mfaSetup)
		r.Post("/api/mfa/verify-setup", h.mfaVerifySetup)

		r.Get("/api/pets", h.listPets)
		r.Post("/api/pets", h.createPet)
		r.Put("/api/pets/{id}", h.updatePet)
		r.Delete("/api/pets/{id}", h.deletePet)

		r.Get("/api/adoptions", h.listAdoptions)
		r.Post("/api/adoptions", h.createAdoption)
		r.Put("/api/adoptions/{id}", h.updateAdoption)
		r.Delete("/api/adoptions/{id}", h.deleteAdoption)
		r.Post("/api/adoptions/{id}/request", h.fileAdoptionRequest)
		r.Get("/api/adoption-requests/mine", h.listOwnRequests)

		r.Get("/api/reminders", h.listReminders)
		r.Get("/api/reminders/{id}", h.getReminder)
		r.Post("/api/reminders", h.createReminder)
		r.Put("/api/reminders/{id}", h.updateReminder)
		r.Delete("/api/reminders/{id}", h.deleteReminder)
		r.Get("/api/reminder-types", h.listReminderTypes)

		r.Get("/api/notifications", h.listNotifications)
		r.Post("/api/notifications", h.createNotification)
		r.Patch("/api/notifications/{id}/read", h.markNotificationRead)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(h.requireRoles(models.RoleAdmin, models.RoleSuperadmin))

		r.Get("/api/admin/stats", h.adminStats)
		r.Get("/api/admin/users", h.listUsers)
		r.Get("/api/admin/users/{id}", h.getUserDetails)
		r.Get("/api/admin/users/{id}/activity", h.userActivity)
		r.Post("/api/admin/users", h.createUser)
		r.Put("/api/admin/users/{id}", h.updateUser)
		r.Delete("/api/admin/users/{id}", h.deleteUser)

		r.Get("/api/admin/adoption-requests", h.listAdoptionRequests)
		r.Patch("/api/admin/adoption-requests/{id}", h.setAdoptionRequestStatus)
		r.Delete("/api/admin/adoption-requests/{id}", h.deleteAdoptionRequest)
	})

	// superadmin routes
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(h.requireRoles(models.RoleSuperadmin))

		r.Get("/api/admin/admins", h.listAdmins)
		r.Post("/api/admin/admins", h.createAdmin)
		r.Put("/api/admin/admins/{id}", h.updateAdmin)
		r.Delete("/api/admin/admins/{id}", h.deleteAdmin)
	})

	return router
}
