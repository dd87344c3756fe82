package cover

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rec := NewMockRecorder(ctrl)

	svc, err := NewService(100, rec)
	require.NoError(t, err)
	defer svc.Close()

	spec := Spec{Title: "Dune", Author: "Frank Herbert", Width: 96, Height: 128}
	want := Render(spec.Title, spec.Author, spec.Width, spec.Height)

	rec.EXPECT().CoverCacheMiss().Times(1)
	assert.Equal(t, want, string(svc.Render(spec)))

	svc.cache.Wait()

	rec.EXPECT().CoverCacheHit().Times(1)
	assert.Equal(t, want, string(svc.Render(spec)))
}

func TestService_NilRecorder(t *testing.T) {
	svc, err := NewService(0, nil)
	require.NoError(t, err)
	defer svc.Close()

	out := svc.Render(DefaultSpec())
	assert.Contains(t, string(out), ">Book</text>")
}

func TestService_DistinctSpecsDoNotShareCacheEntries(t *testing.T) {
	svc, err := NewService(100, nil)
	require.NoError(t, err)
	defer svc.Close()

	a := Spec{Title: "Dune\x00Frank", Author: "Herbert", Width: 96, Height: 128}
	b := Spec{Title: "Dune", Author: "Frank\x00Herbert", Width: 96, Height: 128}

	assert.Equal(t, Render(a.Title, a.Author, 96, 128), string(svc.Render(a)))
	svc.cache.Wait()

	got := string(svc.Render(b))
	assert.Equal(t, Render(b.Title, b.Author, 96, 128), got)
	assert.Contains(t, got, ">Dune</text>")
}
