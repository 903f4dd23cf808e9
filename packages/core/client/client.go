package client

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/validation"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Client struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Telefone  *string `json:"telefone"`
	Cidade    *string `json:"cidade"`
	Ativo     bool    `json:"ativo"`
	CreatedAt string  `json:"data_cadastro"`
	UpdatedAt *string `json:"data_atualizacao"`
}

// Data required to register new client.
// Empty Telefone and Cidade are stored as NULL.
type New struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Inactive bool   `json:"inativo,omitempty"`
}

// Nil field means that it must stay unchanged.
type Changes struct {
	Nome     *string
	Email    *string
	Telefone *string
}

func (c *Changes) IsEmpty() bool {
	return c.Nome == nil && c.Email == nil && c.Telefone == nil
}

// Partial match filter, empty fields are ignored, non-empty are AND-ed.
type Filter struct {
	Nome     string
	Email    string
	Telefone string
}

type Criteria struct {
	Cidade *string
	Ativo  *bool
}

type Order string

const (
	OrderByName         Order = "name"
	OrderByNameDesc     Order = "name_desc"
	OrderByCityThenName Order = "city_name"
	OrderByRecent       Order = "recent"
)

var Orders = []string{
	string(OrderByName),
	string(OrderByNameDesc),
	string(OrderByCityThenName),
	string(OrderByRecent),
}

// Result of aggregation, Key is either city or initial letter.
type Group struct {
	Key    string `json:"chave"`
	Total  int    `json:"total"`
	Ativos int    `json:"ativos"`
}

type Stats struct {
	Total            int     `json:"total"`
	Ativos           int     `json:"ativos"`
	Inativos         int     `json:"inativos"`
	ComTelefone      int     `json:"com_telefone"`
	SemTelefone      int     `json:"sem_telefone"`
	Cidades          int     `json:"cidades"`
	PrimeiroCadastro *string `json:"primeiro_cadastro"`
	UltimoCadastro   *string `json:"ultimo_cadastro"`
}

const MinNameLength = 3

var ErrMissingFields = Error.NewStatusError(
	"Nome e email são obrigatórios",
	http.StatusBadRequest,
)
var ErrInvalidName = Error.NewStatusError(
	"Nome deve ter pelo menos "+strconv.Itoa(MinNameLength)+" caracteres",
	http.StatusBadRequest,
)
var ErrInvalidEmail = Error.NewStatusError(
	"Email inválido",
	http.StatusBadRequest,
)
var ErrInvalidPhone = Error.NewStatusError(
	"Telefone inválido",
	http.StatusBadRequest,
)
var ErrEmailInUse = Error.NewStatusError(
	"Email já cadastrado",
	http.StatusConflict,
)
var ErrNotFound = Error.NewStatusError(
	"Cliente não encontrado",
	http.StatusNotFound,
)
var ErrNothingToUpdate = Error.NewStatusError(
	"Nenhum campo para atualizar",
	http.StatusBadRequest,
)
var ErrInvalidOrder = Error.NewStatusError(
	"Ordenação inválida. Opções válidas: "+strings.Join(Orders, ", "),
	http.StatusBadRequest,
)

func ValidateName(nome string) *Error.Status {
	if utf8.RuneCountInString(nome) < MinNameLength {
		return ErrInvalidName
	}
	return nil
}

func ValidateEmail(email string) *Error.Status {
	if err := validation.StrictEmail(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Empty phone is valid.
func ValidatePhone(phone string) *Error.Status {
	if phone == "" {
		return nil
	}
	if err := validation.Phone(phone); err != nil {
		return ErrInvalidPhone
	}
	return nil
}

// Trims all fields and validates them.
func (n *New) Normalize() *Error.Status {
	n.Nome = strings.TrimSpace(n.Nome)
	n.Email = strings.TrimSpace(n.Email)
	n.Telefone = strings.TrimSpace(n.Telefone)
	n.Cidade = strings.TrimSpace(n.Cidade)

	if n.Nome == "" || n.Email == "" {
		return ErrMissingFields
	}
	if err := ValidateName(n.Nome); err != nil {
		return err
	}
	if err := ValidateEmail(n.Email); err != nil {
		return err
	}
	return ValidatePhone(n.Telefone)
}

// Trims all non-nil fields and validates them.
func (c *Changes) Normalize() *Error.Status {
	if c.IsEmpty() {
		return ErrNothingToUpdate
	}

	if c.Nome != nil {
		v := strings.TrimSpace(*c.Nome)
		if err := ValidateName(v); err != nil {
			return err
		}
		c.Nome = &v
	}
	if c.Email != nil {
		v := strings.TrimSpace(*c.Email)
		if err := ValidateEmail(v); err != nil {
			return err
		}
		c.Email = &v
	}
	if c.Telefone != nil {
		v := strings.TrimSpace(*c.Telefone)
		if err := ValidatePhone(v); err != nil {
			return err
		}
		c.Telefone = &v
	}

	return nil
}

func ParseOrder(raw string) (Order, *Error.Status) {
	v, err := validation.Option(raw, Orders)
	if err != nil {
		return "", ErrInvalidOrder
	}
	return Order(v), nil
}
