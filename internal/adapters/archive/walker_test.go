package archive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dispatch/internal/adapters/archive"
)

var time0 = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

func TestWalk(t *testing.T) {
	root := projectFixture(t)

	var got []string
	for e, err := range archive.Walk(root, archive.DefaultIgnores) {
		require.NoError(t, err)
		if !e.Dir.IsDir() {
			got = append(got, e.RelPath)
		}
	}

	assert.Equal(t, []string{
		"android/app/src/Main.kt",
		"dispatch.yaml",
		"ios/App/AppDelegate.swift",
	}, got)
}

func TestWalk_Break(t *testing.T) {
	root := projectFixture(t)

	count := 0
	for range archive.Walk(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
