package client

// Sample data set used to demonstrate filters and aggregations.
var Samples = []*New{
	{Nome: "Ana Silva", Email: "ana.silva@email.com", Telefone: "(11) 98765-4321", Cidade: "São Paulo"},
	{Nome: "Anderson Santos", Email: "anderson@email.com", Telefone: "(11) 99876-5432", Cidade: "São Paulo"},
	{Nome: "Alice Costa", Email: "alice.costa@email.com", Telefone: "(21) 97654-3210", Cidade: "Rio de Janeiro"},
	{Nome: "Bruno Oliveira", Email: "bruno.oliveira@email.com", Telefone: "(21) 98765-0123", Cidade: "Rio de Janeiro"},
	{Nome: "Brenda Souza", Email: "brenda.souza@email.com", Telefone: "(31) 99876-1234", Cidade: "Belo Horizonte", Inactive: true},
	{Nome: "Carla Martins", Email: "carla.martins@email.com", Telefone: "(41) 97654-5678", Cidade: "Curitiba"},
	{Nome: "Carlos Costa", Email: "carlos.costa@email.com", Telefone: "(41) 98765-6789", Cidade: "Curitiba"},
	{Nome: "Daniela Rocha", Email: "daniela.rocha@email.com", Telefone: "(51) 99876-7890", Cidade: "Porto Alegre"},
	{Nome: "David Ferreira", Email: "david.ferreira@email.com", Telefone: "(51) 97654-8901", Cidade: "Porto Alegre", Inactive: true},
	{Nome: "Elaine Gomes", Email: "elaine.gomes@email.com", Telefone: "(61) 98765-9012", Cidade: "Brasília"},
	{Nome: "Eduardo Lima", Email: "eduardo.lima@email.com", Telefone: "(61) 99876-0123", Cidade: "Brasília"},
	{Nome: "Fernanda Alves", Email: "fernanda.alves@email.com", Telefone: "(71) 97654-1234", Cidade: "Salvador"},
	{Nome: "Felipe Ribeiro", Email: "felipe.ribeiro@email.com", Telefone: "(71) 98765-2345", Cidade: "Salvador", Inactive: true},
	{Nome: "Gabriela Pereira", Email: "gabriela.pereira@email.com", Telefone: "(81) 99876-3456", Cidade: "Recife"},
	{Nome: "Gabriel Barbosa", Email: "gabriel.barbosa@email.com", Telefone: "(81) 97654-4567", Cidade: "Recife"},
}
