package models

// All lists every table in dependency order, for AutoMigrate in tests and
// the seeder. Production schema changes go through goose migrations.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserAuthProvider{},
		&Category{},
		&Tag{},
		&Post{},
		&Comment{},
		&Like{},
	}
}
