package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_UserID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		args    []string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "flag", args: []string{"--user", id.String()}, want: id},
		{name: "short flag", args: []string{"-u", id.String()}, want: id},
		{name: "positional", args: []string{id.String()}, want: id},
		{name: "flag and matching positional", args: []string{"--user", id.String(), id.String()}, want: id},
		{name: "conflicting", args: []string{"--user", id.String(), uuid.New().String()}, wantErr: true},
		{name: "missing", args: nil, wantErr: true},
		{name: "not a uuid", args: []string{"alice"}, wantErr: true},
		{name: "nil uuid", args: []string{uuid.Nil.String()}, wantErr: true},
		{name: "too many args", args: []string{id.String(), id.String()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			called := false
			cmd := newRootCommand(func(_ context.Context, userID uuid.UUID) error {
				called = true
				got = userID
				return nil
			})
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, called)
				return
			}
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommand_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	cmd := newRootCommand(func(got context.Context, _ uuid.UUID) error {
		assert.Equal(t, "v", got.Value(key{}))
		return nil
	})
	cmd.SetArgs([]string{uuid.New().String()})
	require.NoError(t, cmd.ExecuteContext(ctx))
}
