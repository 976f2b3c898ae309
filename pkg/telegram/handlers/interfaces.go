package handlers

import (
	"context"

	"github.com/dskvich/prompt-workspace-bot/pkg/workspace"
)

type WorkspaceProvider interface {
	Get(ctx context.Context, chatID int64) (*workspace.Workspace, error)
}
