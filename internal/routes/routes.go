package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anishanishy81-byte/poverse-sub003/internal/handlers"
	"github.com/anishanishy81-byte/poverse-sub003/internal/middleware"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

// Deps bundles everything Register wires onto the app.
type Deps struct {
	JWTSecret string

	Auth          *handlers.AuthHandler
	Companies     *handlers.CompanyHandler
	Users         *handlers.UserHandler
	Customers     *handlers.CustomerHandler
	Targets       *handlers.TargetHandler
	Attendance    *handlers.AttendanceHandler
	Leave         *handlers.LeaveHandler
	Expenses      *handlers.ExpenseHandler
	Notifications *handlers.NotificationHandler
	Reports       *handlers.ReportHandler
	Routes        *handlers.RouteHandler
	Sync          *handlers.SyncHandler
	Uploads       *handlers.UploadHandler
}

func Register(app *fiber.App, d Deps) {
	api := app.Group("/api", middleware.ResolveIdentity(d.JWTSecret))

	api.Post("/auth/login", d.Auth.Login)
	api.Post("/auth/change-password", middleware.RequireRole(), d.Auth.ChangePassword)
	api.Get("/auth/me", middleware.RequireRole(), d.Users.Me)

	admin := middleware.RequireRole(model.RoleAdmin, model.RoleSuperadmin)
	super := middleware.RequireRole(model.RoleSuperadmin)
	anyUser := middleware.RequireRole()

	companies := api.Group("/companies")
	companies.Post("/", super, d.Companies.Create)
	companies.Get("/", super, d.Companies.List)
	companies.Get("/:id", admin, d.Companies.Get)
	companies.Put("/:id", super, d.Companies.Update)
	companies.Delete("/:id", super, d.Companies.Delete)

	users := api.Group("/users", admin)
	users.Post("/", d.Users.Create)
	users.Get("/", d.Users.List)
	users.Get("/:id", d.Users.Get)
	users.Put("/:id", d.Users.Update)

	api.Get("/profile", anyUser, d.Users.Me)
	api.Put("/profile", anyUser, d.Users.UpdateMe)

	customers := api.Group("/customers", anyUser)
	customers.Post("/", d.Customers.Create)
	customers.Get("/", d.Customers.List)
	customers.Get("/:id", d.Customers.Get)
	customers.Put("/:id", d.Customers.Update)
	customers.Delete("/:id", admin, d.Customers.Delete)
	customers.Post("/:id/interactions", d.Customers.AddInteraction)
	customers.Get("/:id/interactions", d.Customers.ListInteractions)
	customers.Post("/:id/notes", d.Customers.AddNote)
	customers.Get("/:id/notes", d.Customers.ListNotes)
	customers.Post("/:id/purchases", d.Customers.AddPurchase)
	customers.Get("/:id/purchases", d.Customers.ListPurchases)
	api.Delete("/purchases/:purchaseId", anyUser, d.Customers.DeletePurchase)

	targets := api.Group("/targets", anyUser)
	targets.Post("/", admin, d.Targets.Create)
	targets.Get("/", d.Targets.List)
	targets.Get("/:id", d.Targets.Get)
	targets.Post("/:id/visits", d.Targets.RecordVisit)
	targets.Get("/:id/visits", d.Targets.ListVisits)

	attendance := api.Group("/attendance", anyUser)
	attendance.Post("/check-in", d.Attendance.CheckIn)
	attendance.Post("/check-out", d.Attendance.CheckOut)
	attendance.Get("/me", d.Attendance.ListMine)
	attendance.Get("/company", admin, d.Attendance.CompanyDate)

	leave := api.Group("/leave", anyUser)
	leave.Post("/", d.Leave.Create)
	leave.Get("/me", d.Leave.ListMine)
	leave.Get("/company", admin, d.Leave.ListCompany)
	leave.Post("/:id/approve", admin, d.Leave.Approve)
	leave.Post("/:id/reject", admin, d.Leave.Reject)
	leave.Post("/:id/cancel", d.Leave.Cancel)
	leave.Get("/balance", d.Leave.Balance)

	expenses := api.Group("/expenses", anyUser)
	expenses.Post("/", d.Expenses.Create)
	expenses.Get("/me", d.Expenses.ListMine)
	expenses.Get("/company", admin, d.Expenses.ListCompany)
	expenses.Post("/:id/approve", admin, d.Expenses.Approve)
	expenses.Post("/:id/reject", admin, d.Expenses.Reject)
	expenses.Post("/:id/reimburse", admin, d.Expenses.Reimburse)
	expenses.Post("/:id/cancel", d.Expenses.Cancel)
	expenses.Get("/summary", d.Expenses.MonthlySummary)
	expenses.Get("/export", admin, d.Expenses.ExportMonth)

	notifications := api.Group("/notifications", anyUser)
	notifications.Get("/", d.Notifications.List)
	notifications.Post("/broadcast", admin, d.Notifications.Broadcast)
	notifications.Post("/read-all", d.Notifications.MarkAllRead)
	notifications.Put("/:id/status", d.Notifications.SetStatus)
	notifications.Get("/prefs", d.Notifications.GetPrefs)
	notifications.Put("/prefs", d.Notifications.UpdatePrefs)
	notifications.Post("/tokens", d.Notifications.RegisterToken)

	reports := api.Group("/reports", anyUser)
	reports.Get("/daily", d.Reports.Daily)
	reports.Get("/company", admin, d.Reports.CompanyDaily)
	reports.Get("/export", admin, d.Reports.ExportRange)

	api.Post("/routes/plan", anyUser, d.Routes.Plan)
	api.Post("/sync", anyUser, d.Sync.Replay)

	uploads := api.Group("/uploads", anyUser)
	uploads.Post("/selfie", d.Uploads.Selfie)
	uploads.Post("/receipt", d.Uploads.Receipt)
}
