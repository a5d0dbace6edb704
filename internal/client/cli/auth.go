package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return err
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return err
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	result, err := c.auth.Register(ctx, username, email, password)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	c.io.Printf("Account created for %s (%s). Log in with 'auctionhub login'.\n",
		result.Username, result.Email)
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return err
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	session, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}

	c.io.Printf("Logged in as %s (role: %s)\n", session.UserID, session.Role)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.auth.Current(ctx)
	if err != nil {
		c.io.Println(renderError(err))
		return err
	}
	if session == nil {
		c.io.Println("Not logged in.")
		return nil
	}

	c.io.Printf("Logged in as %s (role: %s)\n", session.UserID, session.Role)
	return nil
}
