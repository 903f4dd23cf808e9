package validation

import (
	Error "classroom/packages/common/errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		email    string
		expected *Error.Validation
	}{
		{"ana@mail.com", nil},
		{"a.b+c@sub.domain.org", nil},
		{"", Error.NoValue},
		{"   ", Error.NoValue},
		{"no-at-sign.com", Error.InvalidValue},
		{"two@@mail.com", Error.InvalidValue},
		{"space in@mail.com", Error.InvalidValue},
		{"nodot@mail", Error.InvalidValue},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.expected, Email(tc.email))
		})
	}
}

func TestStrictEmail(t *testing.T) {
	assert.Nil(t, StrictEmail("joao.silva@email.com"))
	assert.Equal(t, Error.InvalidValue, StrictEmail("joao@email.c"))
	assert.Equal(t, Error.InvalidValue, StrictEmail("joão@email.com"))
	assert.Equal(t, Error.NoValue, StrictEmail(""))
}

func TestPhone(t *testing.T) {
	valid := []string{"(11) 98765-4321", "(11)3456-7890", "11987654321", "1134567890"}
	for _, p := range valid {
		assert.Nil(t, Phone(p), p)
	}

	invalid := []string{"123", "(11) 9876-54321", "phone", "119876543210"}
	for _, p := range invalid {
		assert.Equal(t, Error.InvalidValue, Phone(p), p)
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"11987654321", "(11) 98765-4321", true},
		{"(11) 98765-4321", "(11) 98765-4321", true},
		{"1134567890", "(11) 3456-7890", true},
		{"11 3456 7890", "(11) 3456-7890", true},
		{"123456", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			v, err := FormatPhone(tc.raw)
			if tc.ok {
				assert.Nil(t, err)
				assert.Equal(t, tc.expected, v)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestCPF(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"529.982.247-25", "529.982.247-25", true},
		{"52998224725", "529.982.247-25", true},
		{"111.444.777-35", "111.444.777-35", true},
		{"529.982.247-26", "", false},
		{"111.111.111-11", "", false},
		{"1234", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			v, err := CPF(tc.raw)
			if tc.ok {
				assert.Nil(t, err)
				assert.Equal(t, tc.expected, v)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestInteger(t *testing.T) {
	min, max := 1, 10

	v, err := Integer(" 5 ", &min, &max)
	assert.Nil(t, err)
	assert.Equal(t, 5, v)

	_, err = Integer("0", &min, &max)
	assert.NotNil(t, err)

	_, err = Integer("11", &min, &max)
	assert.NotNil(t, err)

	_, err = Integer("abc", nil, nil)
	assert.NotNil(t, err)

	v, err = Integer("-300", nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, -300, v)
}

func TestFloat(t *testing.T) {
	min := 0.0

	v, err := Float("3,14", &min, nil)
	assert.Nil(t, err)
	assert.InDelta(t, 3.14, v, 1e-9)

	_, err = Float("-1", &min, nil)
	assert.NotNil(t, err)

	_, err = Float("pi", nil, nil)
	assert.NotNil(t, err)
}

func TestAge(t *testing.T) {
	age, minor, err := Age("17")
	assert.Nil(t, err)
	assert.Equal(t, 17, age)
	assert.True(t, minor)

	age, minor, err = Age("18")
	assert.Nil(t, err)
	assert.Equal(t, 18, age)
	assert.False(t, minor)

	_, _, err = Age("151")
	assert.NotNil(t, err)

	_, _, err = Age("-1")
	assert.NotNil(t, err)
}

func TestText(t *testing.T) {
	v, err := Text("  olá  ", 3, 10)
	assert.Nil(t, err)
	assert.Equal(t, "olá", v)

	_, err = Text("ab", 3, 0)
	assert.NotNil(t, err)

	_, err = Text("long text here", 1, 5)
	assert.NotNil(t, err)
}

func TestOption(t *testing.T) {
	v, err := Option("SIM", []string{"sim", "não"})
	assert.Nil(t, err)
	assert.Equal(t, "sim", v)

	_, err = Option("talvez", []string{"sim", "não"})
	assert.NotNil(t, err)
}

func TestUsername(t *testing.T) {
	assert.Nil(t, Username("ana"))
	assert.NotNil(t, Username(" ab "))
}

func TestPassword(t *testing.T) {
	assert.Empty(t, Password("Senha@123"))
	assert.Len(t, Password(""), 5)
	assert.Equal(t, []string{"Pelo menos um caractere especial (" + PasswordSpecialChars + ")"}, Password("Senha1234"))
	assert.Equal(t, []string{"Mínimo de 8 caracteres"}, Password("Ab1!"))
}
