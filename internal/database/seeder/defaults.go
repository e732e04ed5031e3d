package seeder

// Defaults returns the seeders run at startup, given the catalog's careers.
func Defaults(careers []string) []Seeder {
	return []Seeder{CareersSeeder{Careers: careers}}
}
