package complaint_controller

import (
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/services"
)

var (
	complaints repository.ComplaintRepository
	users      repository.UserRepository
	mailer     *services.Dispatcher
)

// Init wires the package's handlers to their collaborators. Call once at
// startup, before registering routes.
func Init(repos *repository.Repositories, dispatcher *services.Dispatcher) {
	complaints = repos.Complaints
	users = repos.Users
	mailer = dispatcher
}
