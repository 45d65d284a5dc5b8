package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stream-queue/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestVoteService_Toggle(t *testing.T) {
	userID := uuid.New()
	streamID := uuid.New()

	tests := []struct {
		name       string
		removed    bool
		deleteErr  error
		created    bool
		createErr  error
		callCreate bool
		want       bool
		wantErr    error
	}{
		{name: "adds missing vote", callCreate: true, created: true, want: true},
		{name: "removes existing vote", removed: true, want: false},
		{name: "concurrent insert still voted", callCreate: true, created: false, want: true},
		{name: "unknown stream", callCreate: true, createErr: repositories.ErrNotFound, wantErr: ErrStreamNotFound},
		{name: "delete fails", deleteErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "insert fails", callCreate: true, createErr: errors.New("insert error"), wantErr: errors.New("insert error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			upvotes := NewMockUpvoteStore(ctrl)
			upvotes.EXPECT().Delete(gomock.Any(), userID, streamID).Return(tt.removed, tt.deleteErr)
			if tt.callCreate {
				upvotes.EXPECT().Create(gomock.Any(), userID, streamID).Return(tt.created, tt.createErr)
			}

			svc := NewVoteService(upvotes, nil)
			got, err := svc.Toggle(context.Background(), userID, streamID)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrStreamNotFound) {
					assert.ErrorIs(t, err, ErrStreamNotFound)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// votes is an in-memory UpvoteStore used to check toggle round trips.
type votes map[[2]uuid.UUID]bool

func (v votes) Create(_ context.Context, userID, streamID uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{userID, streamID}
	if v[key] {
		return false, nil
	}
	v[key] = true
	return true, nil
}

func (v votes) Delete(_ context.Context, userID, streamID uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{userID, streamID}
	if !v[key] {
		return false, nil
	}
	delete(v, key)
	return true, nil
}

func TestVoteService_Toggle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	streamID := uuid.New()
	store := votes{}
	svc := NewVoteService(store, nil)

	voted, err := svc.Toggle(ctx, userID, streamID)
	assert.NoError(t, err)
	assert.True(t, voted)
	assert.Len(t, store, 1)

	voted, err = svc.Toggle(ctx, userID, streamID)
	assert.NoError(t, err)
	assert.False(t, voted)
	assert.Empty(t, store)
}

func TestVoteService_Unvote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	streamID := uuid.New()
	upvotes := NewMockUpvoteStore(ctrl)
	svc := NewVoteService(upvotes, nil)

	upvotes.EXPECT().Delete(gomock.Any(), userID, streamID).Return(true, nil)
	assert.NoError(t, svc.Unvote(context.Background(), userID, streamID))

	upvotes.EXPECT().Delete(gomock.Any(), userID, streamID).Return(false, nil)
	assert.NoError(t, svc.Unvote(context.Background(), userID, streamID))

	upvotes.EXPECT().Delete(gomock.Any(), userID, streamID).Return(false, errors.New("db error"))
	assert.EqualError(t, svc.Unvote(context.Background(), userID, streamID), "db error")
}
