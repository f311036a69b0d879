package category_controller

import (
	"github.com/Aphia-Commerce/aphia-api/repository"
)

var categories repository.CategoryRepository

// Init wires the package's handlers to the category store. Call once at
// startup, before registering routes.
func Init(repos *repository.Repositories) {
	categories = repos.Categories
}
