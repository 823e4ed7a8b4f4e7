package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrBootstrapCatalogCommandIsNotConstructed = errors.New(
	"BootstrapCatalogCommand must be created via NewBootstrapCatalogCommand constructor",
)

// BootstrapCatalogCommand fills an empty catalog from the remote feed.
// This is a parameterless command run once at startup.
type BootstrapCatalogCommand struct {
	guard guard.ConstructorGuard
}

func NewBootstrapCatalogCommand() BootstrapCatalogCommand {
	return BootstrapCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c BootstrapCatalogCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapCatalogCommandIsNotConstructed)
}
