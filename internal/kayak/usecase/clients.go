package usecase

import (
	"context"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgerror"
)

type ClientInput struct {
	Email string
}

type ClientOutput struct {
	Client entity.Client
}

// Client looks up the directory record for the email. A missing email
// is an error, not an empty result.
func (u *Usecase) Client(_ context.Context, in ClientInput) (*ClientOutput, error) {
	client, ok := u.directory.Get(in.Email)
	if !ok {
		return nil, pkgerror.NewBusiness("client not found", pkgerror.CodeNotFound)
	}
	return &ClientOutput{Client: client}, nil
}
