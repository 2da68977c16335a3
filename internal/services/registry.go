package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	FollowService  FollowService
	PlayerService  PlayerService
	ListingService ListingService
	AdminService   AdminService
}
