package fixture

// firstNames and lastNames feed the fullname source of the default
// fixture's Clientes table.
var firstNames = []string{
	"Fulano", "João", "Yuri", "Hugo", "Maria", "Sandra", "Alexandre",
	"Ricardo", "Ciclano", "Beltrano", "Davi", "Luís", "Jacob", "Doug",
	"Alina", "Elva", "Harriet", "Leida", "Harold", "Velma", "Milford",
	"Danae", "Jamee", "Melita", "Nieves", "Meghan", "Laronda", "Simonne",
	"Jule", "Hester", "Shameka", "Jefferey", "Brittaney", "Casandra",
	"Tessa", "Jennifer", "Harris", "Krystle", "Ollie", "Colby",
	"Gilberto", "Arie", "Esperanza", "Tyson", "Letitia", "Jaimie",
	"Alethea", "Dorthea", "Manual", "Fabiola", "Genny", "Hana",
	"Frederick", "Louie", "Thaddeus", "Joey", "Gregory", "Peter",
	"Melonie", "Laverne",
}

var lastNames = []string{
	"da Silva", "Kunde", "Roberts", "Denny", "Eacret", "Gulbranson",
	"Hargraves", "Niblett", "Ornelas", "Stackhouse", "Gibson", "Pless",
	"Lymon", "Humfeld", "Truesdell", "Hunsucker", "Bish", "Fritze",
	"Byrd", "Friel", "Dade", "Roesler", "Brim", "Mcneely", "Mullikin",
	"Washam", "Nordstrom", "Wilmes", "Henze", "Vice", "Laird",
	"Aylesworth", "Colon", "Brodt", "Huskey", "Viruet", "Dresser",
	"Cupples", "Arline", "Bolinger", "Cartee", "Nolan", "Vaughan",
	"Difranco", "Hollinger", "Dalal", "Ptak", "Pennock", "Belliveau",
	"Bueche", "Caves", "Yoo", "Barmore", "Branton", "Kelsey", "Paille",
	"Decosta", "Perrin", "Atherton", "Mcgahey",
}

var departmentNames = []string{"Comercial", "Engenharia", "Vendas"}

// Default returns the demonstration fixture: a Departamentos table with
// one row per department, and a Clientes table whose departamento field
// references a Departamentos row by index.
func Default() *Config {
	names := make([]string, 0, len(firstNames)+len(lastNames))
	names = append(names, firstNames...)
	names = append(names, lastNames...)

	return &Config{
		Seed: 1,
		Tables: []TableConfig{
			{
				Name:        "Departamentos",
				Rows:        len(departmentNames),
				EntryStride: 24,
				Fields: []FieldConfig{
					{Name: "id", Offset: 0, Type: "integer", Length: 4, Source: SourceSequence},
					{Name: "nome", Offset: 4, Type: "text", Length: 20, Source: SourceCycle, Choices: departmentNames},
				},
			},
			{
				Name:        "Clientes",
				Rows:        250,
				EntryStride: 28,
				Fields: []FieldConfig{
					{Name: "id", Offset: 0, Type: "integer", Length: 4, Source: SourceSequence},
					{Name: "departamento", Offset: 4, Type: "integer", Length: 4, Source: SourceRef, Ref: "Departamentos"},
					{Name: "nome", Offset: 8, Type: "text", Length: 20, Source: SourceFullName, Choices: names},
				},
			},
		},
	}
}
