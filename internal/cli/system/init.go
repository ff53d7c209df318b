package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if _, ephemeral := ctx.Store.(*storage.MemoryStore); ephemeral {
		ctx.Println("Ephemeral storage needs no initialization.")
		return nil
	}

	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// Close first so the file is not held open while it is removed.
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			ctx.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized daylearn storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
