package userdto

type Basic struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
}

func (dto *Basic) ToPublic() *Public {
	return &Public{
		ID:    dto.ID,
		Nome:  dto.Nome,
		Email: dto.Email,
	}
}

func (dto *Basic) ToProfile() *Profile {
	return &Profile{
		Public:    *dto.ToPublic(),
		CreatedAt: dto.CreatedAt,
	}
}

type Public struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type Profile struct {
	Public
	CreatedAt string `json:"created_at"`
}

// Data stored inside of access token.
type Payload struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type Registration struct {
	Nome     string
	Email    string
	Password string
}
