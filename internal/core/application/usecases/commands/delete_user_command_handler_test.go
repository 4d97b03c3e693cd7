package commands_test

import (
	"context"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCommandHandler_Handle_RemovesLocationToo(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteUserCommand(id)

	userRepo := new(MockUserRepository)
	locationRepo := new(MockUserLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Remove", mock.Anything, id).Return(nil).Once(),
		uow.On("UserLocationRepository").Return(locationRepo).Once(),
		locationRepo.On("RemoveByUserID", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_NoRegisteredLocation(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteUserCommand(id)

	userRepo := new(MockUserRepository)
	locationRepo := new(MockUserLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Remove", mock.Anything, id).Return(nil).Once(),
		uow.On("UserLocationRepository").Return(locationRepo).Once(),
		locationRepo.On("RemoveByUserID", mock.Anything, id).
			Return(errs.NewObjectNotFoundError("userId", id.String())).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_UserMissing(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteUserCommand(id)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Remove", mock.Anything, id).
			Return(errs.NewObjectNotFoundError("userId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
