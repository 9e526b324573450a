package services

import (
	"fmt"

	"dirfav/internal/models"
)

// OwnerUserID is the sentinel id of the locally injected owner profile.
// It is never sent to the remote directory service.
const OwnerUserID = 0

func ownerPhotoURL(photoID, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", width, height, photoID)
}

// OwnerProfile returns the hard-coded application owner record.
func OwnerProfile() models.User {
	return models.User{
		ID:       OwnerUserID,
		Name:     "Dana Whitfield",
		Username: "dana",
		Email:    "dana@dirfav.dev",
		Phone:    "(555) 014-2208",
		Website:  "https://github.com/dwhitfield",
		Address: models.Address{
			City: "Rotterdam",
			Geo:  models.Geo{},
		},
		Company: models.Company{
			Name:        "Directory Labs",
			CatchPhrase: "Backend Developer",
			Bs:          "Directory Tooling",
		},
	}
}

func OwnerPosts() []models.Post {
	return []models.Post{
		{ID: 101, UserID: OwnerUserID, Title: "dirfav", Body: "Directory browser daemon with local favorites, recent views and preferences.", Url: "https://github.com/dwhitfield/dirfav"},
		{ID: 102, UserID: OwnerUserID, Title: "kvpart", Body: "Single-file compressed key-value partition with atomic writes.", Url: "https://github.com/dwhitfield/kvpart"},
		{ID: 103, UserID: OwnerUserID, Title: "placefetch", Body: "Typed client for placeholder REST services with politeness rate limiting.", Url: "https://github.com/dwhitfield/placefetch"},
		{ID: 104, UserID: OwnerUserID, Title: "gauges", Body: "Small prometheus gauge helpers used across my side projects.", Url: "https://github.com/dwhitfield/gauges"},
		{ID: 105, UserID: OwnerUserID, Title: "logsplit", Body: "Per-channel file logging on top of zerolog.", Url: "https://github.com/dwhitfield/logsplit"},
		{ID: 106, UserID: OwnerUserID, Title: "homelab notes", Body: "Notes and manifests for the machines this daemon runs on.", Url: "https://github.com/dwhitfield/homelab"},
	}
}

func OwnerAlbums() []models.Album {
	photos := []models.Photo{
		{ID: 1002, AlbumID: 101, Title: "Go"},
		{ID: 1003, AlbumID: 101, Title: "Linux"},
		{ID: 1004, AlbumID: 101, Title: "Docker"},
		{ID: 1005, AlbumID: 101, Title: "Prometheus"},
		{ID: 1006, AlbumID: 101, Title: "Grafana"},
		{ID: 1007, AlbumID: 101, Title: "PostgreSQL"},
		{ID: 1008, AlbumID: 101, Title: "Redis"},
		{ID: 1009, AlbumID: 101, Title: "Nginx"},
		{ID: 1010, AlbumID: 101, Title: "Git"},
	}
	for i := range photos {
		photos[i].Url = ownerPhotoURL(photos[i].ID, 800, 600)
		photos[i].ThumbnailUrl = ownerPhotoURL(photos[i].ID, 300, 200)
	}
	return []models.Album{
		{ID: 101, UserID: OwnerUserID, Title: "Tech Stack", Photos: photos},
	}
}

func OwnerTodos() []models.Todo {
	return []models.Todo{
		{ID: 201, UserID: OwnerUserID, Title: "Registered the dirfav domain", Completed: true},
		{ID: 202, UserID: OwnerUserID, Title: "Ported the favorites store", Completed: true},
		{ID: 203, UserID: OwnerUserID, Title: "Ported the recent views log", Completed: true},
		{ID: 204, UserID: OwnerUserID, Title: "Ported the preferences store", Completed: true},
		{ID: 205, UserID: OwnerUserID, Title: "Wired the placeholder gateway", Completed: true},
		{ID: 206, UserID: OwnerUserID, Title: "Added prometheus dashboards", Completed: true},
		{ID: 207, UserID: OwnerUserID, Title: "Write the operations runbook", Completed: false},
	}
}
