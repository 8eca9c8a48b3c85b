// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := New(discardLogger(), time.Second)

	err := s.Register("trash_purge", "not a cron spec", func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "trash_purge")
}

func TestRegister_Descriptor(t *testing.T) {
	s := New(discardLogger(), time.Second)

	assert.NoError(t, s.Register("trash_purge", "@daily", func(context.Context) error { return nil }))
	assert.Len(t, s.cron.Entries(), 1)
}

func TestRun_BoundsContext(t *testing.T) {
	s := New(discardLogger(), 50*time.Millisecond)

	var deadlineSet bool
	s.run("probe", func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return errors.New("failed")
	})

	assert.True(t, deadlineSet)
}
