package main

import (
	"context"
	"testing"

	"booksapi/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_SkipsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)

	gulag, odyssey := fixtures[0], fixtures[1]
	mockRepo.EXPECT().GetByISBN(gomock.Any(), gulag.ISBN).Return(gulag, nil)
	mockRepo.EXPECT().GetByISBN(gomock.Any(), odyssey.ISBN).Return(book.Book{}, book.ErrNotFound)
	mockRepo.EXPECT().Create(gomock.Any(), odyssey).Return(odyssey, nil)

	inserted, err := seed(context.Background(), mockRepo, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSeed_StopsOnStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)

	mockRepo.EXPECT().GetByISBN(gomock.Any(), fixtures[0].ISBN).Return(book.Book{}, assert.AnError)

	inserted, err := seed(context.Background(), mockRepo, fixtures)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, inserted)
}
