package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterMemberCommand(t *testing.T) {
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "  kim ", kernel.NewAddress("Seoul", "1", "1111"))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "kim", cmd.Name())

	_, err = commands.NewRegisterMemberCommand(kernel.UUID{}, " ", kernel.Address{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.RegisterMemberCommand{}.Validate(), commands.ErrRegisterMemberCommandIsNotConstructed)
}

func TestRegisterMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", kernel.NewAddress("Seoul", "1", "1111"))

	repo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("FindByName", ctx, "kim").Return([]*member.Member{}, nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(m *member.Member) bool {
			return m.ID().IsEqual(cmd.MemberID()) && m.Name() == "kim"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", kernel.Address{})

	repo := new(MockMemberRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MemberRepository").Return(repo).Once()
	repo.On("FindByName", ctx, "kim").Return([]*member.Member{newMember(t, "kim")}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterMemberCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", kernel.Address{})

	uow := new(MockUoW)
	factory := new(MockMemberUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterMemberCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestUpdateMemberNameCommandHandler_Handle(t *testing.T) {
	t.Run("renames member", func(t *testing.T) {
		ctx := t.Context()
		m := newMember(t, "kim")
		cmd, err := commands.NewUpdateMemberNameCommand(m.ID(), "lee")
		require.NoError(t, err)

		repo := new(MockMemberRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MemberRepository").Return(repo).Once(),
			repo.On("Get", ctx, m.ID()).Return(m, nil).Once(),
			repo.On("FindByName", ctx, "lee").Return([]*member.Member{}, nil).Once(),
			repo.On("Update", ctx, m).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockMemberUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateMemberNameCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.Equal(t, "lee", m.Name())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rejects name of another member", func(t *testing.T) {
		ctx := t.Context()
		m := newMember(t, "kim")
		cmd, _ := commands.NewUpdateMemberNameCommand(m.ID(), "lee")

		repo := new(MockMemberRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("MemberRepository").Return(repo).Once()
		repo.On("Get", ctx, m.ID()).Return(m, nil).Once()
		repo.On("FindByName", ctx, "lee").Return([]*member.Member{newMember(t, "lee")}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockMemberUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateMemberNameCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
		require.Equal(t, "kim", m.Name())
	})

	t.Run("member not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpdateMemberNameCommand(id, "lee")

		repo := new(MockMemberRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("MemberRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("member", id)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockMemberUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateMemberNameCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}
