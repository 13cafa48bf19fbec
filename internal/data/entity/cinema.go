package entity

// Cinema is a persisted cinema row. Filmes reference it through their
// cinema_id foreign key.
type Cinema struct {
	ID   int64  `db:"id"`
	Nome string `db:"nome"`
}
