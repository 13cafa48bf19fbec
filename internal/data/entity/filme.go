package entity

// Filme is a persisted movie row. ID is assigned by the database on
// insert and never comes from a client.
type Filme struct {
	ID       int64  `db:"id"`
	Titulo   string `db:"titulo"`
	Genero   string `db:"genero"`
	Duracao  int    `db:"duracao"`
	CinemaID *int64 `db:"cinema_id"`
}
