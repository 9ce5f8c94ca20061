// Command inspect reads and seeds the local collaborator store of a hub.
//
//	inspect notifications -user bob -limit 20
//	inspect add-user -id alice -name Alice -avatar https://...
//	inspect token -user alice -ttl 24h
package main

import (
	"collab-hub/auth"
	"collab-hub/domain"
	"collab-hub/repositories"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: inspect notifications|add-user|token [flags]")
	}
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	switch args[0] {
	case "notifications":
		return listNotifications(config, args[1:], out)
	case "add-user":
		return addUser(config, args[1:], out)
	case "token":
		return mintToken(config, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func listNotifications(config Config, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("notifications", flag.ContinueOnError)
	userID := flags.String("user", "", "User whose notifications are listed")
	limit := flags.Int("limit", 50, "Maximum number of notifications, 0 for all")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	notifications, err := repositories.NewNotificationRepository(db, slog.Default()).ListNotifications(*userID, *limit)
	if err != nil {
		return err
	}

	header := fmt.Sprintf(" %d notification(s) for %s ", len(notifications), *userID)
	fmt.Fprintln(out, color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Created", "Type", "Actor", "Page", "Message", "ID"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, n := range notifications {
		table.Append([]string{
			n.CreatedAt.Local().Format(time.DateTime),
			string(n.Kind),
			n.ActorID,
			n.PageID,
			n.Message,
			n.ID.String()[:8],
		})
	}
	table.Render()
	return nil
}

func addUser(config Config, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("add-user", flag.ContinueOnError)
	id := flags.String("id", "", "User id")
	name := flags.String("name", "", "Display name")
	avatar := flags.String("avatar", "", "Avatar url")
	if err := flags.Parse(args); err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := repositories.NewUserRepository(db).CreateUser(domain.User{ID: *id, Name: *name, Avatar: *avatar}); err != nil {
		return err
	}
	color.Fprintf(out, "<green>User %s created</>\n", *id)
	return nil
}

func mintToken(config Config, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := flags.String("user", "", "User id carried by the token")
	claim := flags.String("claim", "userId", "Identity claim name")
	ttl := flags.Duration("ttl", 24*time.Hour, "Token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required to mint a token")
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}

	token, err := auth.GenerateToken([]byte(config.JWTSecret), *claim, *userID, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
