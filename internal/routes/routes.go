package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zibuza/Reschool-HW-B/internal/handlers"
)

// Deps is everything Register mounts onto the app.
type Deps struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Posts    *handlers.PostHandler
	Comments *handlers.CommentHandler
	Upload   *handlers.UploadHandler

	// RequireAuth is the guard applied to every protected route.
	RequireAuth fiber.Handler
}

// Register wires every route. Public surface: sign-up, sign-in, comment
// listing, upload and the liveness root; everything else sits behind the
// guard.
func Register(app *fiber.App, d Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello world")
	})

	auth := app.Group("/auth")
	auth.Post("/sign-up", d.Auth.SignUp)
	auth.Post("/sign-in", d.Auth.SignIn)
	auth.Get("/current-user", d.RequireAuth, d.Auth.CurrentUser)

	users := app.Group("/users", d.RequireAuth)
	users.Get("/", d.Users.Profile)
	users.Put("/", d.Users.Update)

	posts := app.Group("/posts", d.RequireAuth)
	posts.Get("/", d.Posts.List)
	posts.Post("/", d.Posts.Create)
	posts.Get("/:id", d.Posts.Get)
	posts.Put("/:id", d.Posts.Update)
	posts.Delete("/:id", d.Posts.Delete)
	posts.Post("/:id/reactions", d.Posts.React)

	comments := app.Group("/comments")
	comments.Post("/:postId", d.RequireAuth, d.Comments.Create)
	comments.Get("/:postId", d.Comments.List)
	comments.Put("/comment/:commentId", d.RequireAuth, d.Comments.Update)
	comments.Delete("/comment/:commentId", d.RequireAuth, d.Comments.Delete)

	app.Post("/upload", d.Upload.Upload)
}
