package services

import (
	"github.com/blogem/workout-tracker/repositories"
)

// Services holds all service instances
type Services struct {
	Users    UserService
	Workouts WorkoutService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, bcryptCost int) *Services {
	return &Services{
		Users:    NewUserService(repos.Users, bcryptCost),
		Workouts: NewWorkoutService(repos.Workouts, repos.Exercises),
	}
}
