package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitorUsecase_Hit(t *testing.T) {
	counter := &fakeCounter{n: 41}
	hub := &recordingHub{}
	uc := NewVisitorUsecase(counter, hub, nil)

	assert.Equal(t, int64(42), uc.Hit(context.Background()))
	assert.Equal(t, int64(43), uc.Hit(context.Background()))
	assert.Equal(t, []int64{42, 43}, hub.counts)
	assert.Equal(t, int64(43), uc.Current(context.Background()))
}

func TestVisitorUsecase_FallsBackToLocalCount(t *testing.T) {
	counter := &fakeCounter{n: 10}
	uc := NewVisitorUsecase(counter, nil, nil)

	assert.Equal(t, int64(11), uc.Hit(context.Background()))

	counter.err = errBoom
	assert.Equal(t, int64(12), uc.Hit(context.Background()))
	assert.Equal(t, int64(12), uc.Current(context.Background()))
}

func TestVisitorUsecase_NoCounter(t *testing.T) {
	uc := NewVisitorUsecase(nil, nil, nil)

	assert.Equal(t, int64(0), uc.Current(context.Background()))
	assert.Equal(t, int64(1), uc.Hit(context.Background()))
}
