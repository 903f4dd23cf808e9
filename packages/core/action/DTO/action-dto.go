package actiondto

import (
	Error "classroom/packages/common/errors"
	"net/http"
)

var ErrInvalidRequester = Error.NewStatusError(
	"Usuário não autenticado",
	http.StatusUnauthorized,
)

type Basic struct {
	RequesterID int64
}

func (dto *Basic) ValidateRequesterID() *Error.Status {
	if dto.RequesterID <= 0 {
		return ErrInvalidRequester
	}
	return nil
}

func (dto *Basic) ToTargeted(targetID int64) *Targeted {
	return &Targeted{
		TargetID: targetID,
		Basic:    *dto,
	}
}

// Action performed by requester over entity with TargetID.
type Targeted struct {
	TargetID int64
	Basic
}

func NewTargeted(targetID int64, requesterID int64) *Targeted {
	return &Targeted{
		TargetID: targetID,
		Basic: Basic{
			RequesterID: requesterID,
		},
	}
}

func (dto *Targeted) IsRequesterTarget() bool {
	return dto.RequesterID == dto.TargetID
}
