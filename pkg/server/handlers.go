package server

import (
	"Rately/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Rating       *handler.Rating
	Form         *handler.Form
	Stats        *handler.Stats
	Challenge    *handler.Challenge
	Feed         *handler.Feed
	Pin          *handler.Pin
	Bookmark     *handler.Bookmark
	Follow       *handler.Follow
	Like         *handler.Like
	Anything     *handler.Anything
	User         *handler.User
	Notification *handler.Notification
}
