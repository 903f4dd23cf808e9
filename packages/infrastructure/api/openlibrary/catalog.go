package openlibrary

import "strings"

var Catalog = []Book{
	{
		Title:    "Inception",
		Subjects: []string{"Ficção Científica", "Ação", "Thriller"},
		Synopsis: "Um ladrão que rouba segredos corporativos através da tecnologia de compartilhamento de sonhos recebe a tarefa inversa de implantar uma ideia.",
		Year:     2010,
		Rating:   8.8,
	},
	{
		Title:    "The Shawshank Redemption",
		Subjects: []string{"Drama"},
		Synopsis: "Dois homens presos formam uma amizade duradoura enquanto buscam uma redenção final.",
		Year:     1994,
		Rating:   9.3,
	},
	{
		Title:    "The Dark Knight",
		Subjects: []string{"Ação", "Crime", "Drama"},
		Synopsis: "Quando a ameaça conhecida como o Coringa surge do submundo do crime de Gotham, ele causa caos e anarquia.",
		Year:     2008,
		Rating:   9.0,
	},
	{
		Title:    "Pulp Fiction",
		Subjects: []string{"Crime", "Drama"},
		Synopsis: "As vidas de dois assassinos de aluguel, um boxeador, uma esposa de gângster e um par de bandidos se entrelaçam.",
		Year:     1994,
		Rating:   8.9,
	},
	{
		Title:    "Forrest Gump",
		Subjects: []string{"Drama", "Romance"},
		Synopsis: "A vida é como uma caixa de chocolates, você nunca sabe o que vai conseguir. A história de um homem simples.",
		Year:     1994,
		Rating:   8.8,
	},
	{
		Title:    "Interstellar",
		Subjects: []string{"Ficção Científica", "Drama"},
		Synopsis: "Um grupo de exploradores viaja através de um buraco de minhoca no espaço para garantir a sobrevivência da humanidade.",
		Year:     2014,
		Rating:   8.6,
	},
	{
		Title:    "Fight Club",
		Subjects: []string{"Drama"},
		Synopsis: "Um homem insone que trabalha em um departamento de reclamações encontra alívio em grupos de apoio fictícios.",
		Year:     1999,
		Rating:   8.8,
	},
	{
		Title:    "The Matrix",
		Subjects: []string{"Ação", "Ficção Científica"},
		Synopsis: "Um hacker descobre a verdade sobre sua realidade e seu papel no conflito com seus criadores.",
		Year:     1999,
		Rating:   8.7,
	},
}

// Case-insensitive substring search over Catalog titles.
func SearchCatalog(title string) []Book {
	title = strings.ToLower(title)

	res := []Book{}
	for _, book := range Catalog {
		if strings.Contains(strings.ToLower(book.Title), title) {
			res = append(res, book)
		}
	}
	return res
}
