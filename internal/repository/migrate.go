package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every row model. The
// unique indexes created here (users.username, share_links.token) are
// load-bearing: services rely on them as the authoritative guards.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&contentModel{},
		&shareLinkModel{},
	)
}
