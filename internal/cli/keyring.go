package cli

import (
	"fmt"

	"github.com/shoaibmiaan/gramorx-planner/internal/keyring"
	"github.com/shoaibmiaan/gramorx-planner/internal/storage"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the OS keyring."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if !storage.IsPostgresConnStr(c.ConnectionString) {
		return fmt.Errorf("expected a postgres:// or postgresql:// connection string")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in the OS keyring.")
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from the OS keyring.")
	return nil
}
