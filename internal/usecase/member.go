package usecase

import (
	"context"

	"club-portal/internal/pkg/errs"
	"club-portal/internal/usecase/readmodel"
)

type MemberUseCase interface {
	ListMembers(ctx context.Context) ([]*readmodel.PersonRM, error)
}

type memberUseCaseImpl struct {
	personRepo PersonRepository
}

func NewMemberUseCase(personRepo PersonRepository) MemberUseCase {
	return &memberUseCaseImpl{personRepo: personRepo}
}

func (m *memberUseCaseImpl) ListMembers(ctx context.Context) ([]*readmodel.PersonRM, error) {
	members, err := m.personRepo.ListMembers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list members")
	}
	return members, nil
}
