package handlers

// AppHandlers содержит все HTTP-хендлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	PlayerHandler  *PlayerHandler
	PublicHandler  *PublicHandler
	ListingHandler *ListingHandler
	OwnerHandler   *OwnerHandler
}
