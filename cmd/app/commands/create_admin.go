package commands

import (
	"context"
	"fmt"

	"github.com/clinicops/admin-api/internal/app"
	"github.com/clinicops/admin-api/internal/config"
)

// RunCreateAdmin registers an administrator account, reviving a soft-deleted
// record with the same user id when one exists. The password is encrypted
// before it is stored.
func RunCreateAdmin(ctx context.Context, userID, password string, io IOTuple) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.AdminAuthUseCase(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize auth use case: %w", err)
	}

	identity, err := useCase.RegisterOrReactivate(ctx, userID, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(io.Writer, "Admin created\n")
	fmt.Fprintf(io.Writer, "  id:      %s\n", identity.ID)
	fmt.Fprintf(io.Writer, "  user_id: %s\n", identity.Key)
	return nil
}
