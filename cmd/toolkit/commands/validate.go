package commands

import (
	"classroom/packages/common/validation"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validadores (email, telefone, CPF, idade, senha)",
	}

	var strict bool

	email := &cobra.Command{
		Use:   "email <valor>",
		Short: "Validar email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validate := validation.Email
			if strict {
				validate = validation.StrictEmail
			}

			if err := validate(args[0]); err != nil {
				return err.ToStatus("Email não informado", "Email inválido")
			}

			success(cmd.OutOrStdout(), "Email válido")

			return nil
		},
	}
	email.Flags().BoolVar(&strict, "strict", false, "validação estrita (exige TLD com 2+ letras)")

	phone := &cobra.Command{
		Use:   "phone <valor>",
		Short: "Validar e formatar telefone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted, err := validation.FormatPhone(args[0])
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Telefone válido: "+formatted)

			return nil
		},
	}

	cpf := &cobra.Command{
		Use:   "cpf <valor>",
		Short: "Validar CPF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted, err := validation.CPF(args[0])
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "CPF válido: "+formatted)

			return nil
		},
	}

	age := &cobra.Command{
		Use:   "age <valor>",
		Short: "Validar idade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, minor, err := validation.Age(args[0])
			if err != nil {
				return err
			}

			msg := strconv.Itoa(v) + " anos, maior de idade"
			if minor {
				msg = strconv.Itoa(v) + " anos, menor de idade"
			}

			success(cmd.OutOrStdout(), msg)

			return nil
		},
	}

	password := &cobra.Command{
		Use:   "password <valor>",
		Short: "Verificar força da senha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unmet := validation.Password(args[0])
			if len(unmet) != 0 {
				return errors.New("Senha fraca:\n  - " + strings.Join(unmet, "\n  - "))
			}

			success(cmd.OutOrStdout(), "Senha forte")

			return nil
		},
	}

	cmd.AddCommand(email, phone, cpf, age, password)

	return cmd
}
