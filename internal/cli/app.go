package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/todolite/todolite/internal/domain"
	"github.com/todolite/todolite/internal/store/grpcstore"
	"github.com/todolite/todolite/internal/store/jsonfile"
	"github.com/todolite/todolite/internal/tui"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// App wires root flags to a store and registers the subcommands.
type App struct {
	file  string
	addr  string
	token string

	store  domain.Store
	conn   *grpc.ClientConn
	logger *zap.Logger
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todos.json"
	}
	return filepath.Join(home, ".todolite", "todos.json")
}

// New builds the root command. With no subcommand it opens the
// interactive list; subcommands cover scripted use.
func New() *cli.Command {
	app := &App{}

	root := &cli.Command{
		Name:      "todo",
		Usage:     "A tiny to-do list",
		UsageText: "todo [global options] [command]",
		Description: `Keeps a to-do list in a local JSON file, or against a todod
server when --addr is given.

Run 'todo' with no arguments to open the interactive list.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the local JSON data file",
				Sources:     cli.EnvVars("TODOLITE_FILE"),
				Value:       defaultDataFile(),
				Destination: &app.file,
			},
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "todod server address; when set the list lives on the server",
				Sources:     cli.EnvVars("TODOLITE_ADDR"),
				Destination: &app.addr,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "bearer token for the server (overrides stored credentials)",
				Sources:     cli.EnvVars(tokenEnvVar),
				Destination: &app.token,
			},
		},
		Before: app.openStore,
		After:  app.closeStore,
		Commands: []*cli.Command{
			app.addCmd(),
			app.lsCmd(),
			app.doneCmd(),
			app.rmCmd(),
			app.authCmd(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
			}
			return tui.Run(app.store)
		},
	}

	return root
}

// Run executes the CLI and returns a process exit code.
func Run(ctx context.Context, args []string) int {
	if err := New().Run(ctx, args); err != nil {
		fail(err.Error())
		return 1
	}
	return 0
}

func (a *App) openStore(ctx context.Context, c *cli.Command) (context.Context, error) {
	// The log goes to a file; the terminal belongs to the TUI. A broken
	// log destination should not take the whole client down.
	if logger, err := newLogger(); err == nil {
		a.logger = logger
	} else {
		a.logger = zap.NewNop()
	}

	if a.addr == "" {
		a.logger.Info("using local store", zap.String("file", a.file))
		a.store = jsonfile.New(a.file)
		return ctx, nil
	}

	token := a.token
	if token == "" {
		if ti, err := GetToken(); err == nil && ti != nil {
			token = ti.Token
		}
	}
	store, conn, err := grpcstore.Dial(a.addr, token)
	if err != nil {
		a.logger.Error("connect failed", zap.String("addr", a.addr), zap.Error(err))
		return ctx, fmt.Errorf("connect %s: %w", a.addr, err)
	}
	a.logger.Info("using remote store", zap.String("addr", a.addr))
	a.store = store
	a.conn = conn
	return ctx, nil
}

func (a *App) closeStore(ctx context.Context, c *cli.Command) error {
	if a.logger != nil {
		defer a.logger.Sync()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}

func (a *App) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new todo",
		UsageText: "todo add <text...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if err := domain.ValidateText(text); err != nil {
				return fmt.Errorf("add: %w", err)
			}
			todo, err := a.store.Add(ctx, text)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ok(fmt.Sprintf("added #%d", todo.ID))
			return nil
		},
	}
}

func (a *App) lsCmd() *cli.Command {
	var plain bool
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List todos",
		UsageText: "todo ls [--plain]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "unstyled output for scripts",
				Destination: &plain,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			todos, err := a.store.List(ctx)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			if plain {
				for _, t := range todos {
					mark := " "
					if t.Completed {
						mark = "x"
					}
					fmt.Printf("%d\t[%s]\t%s\n", t.ID, mark, t.Text)
				}
				return nil
			}
			if len(todos) == 0 {
				fmt.Println(mutedStyle.Render("nothing to do"))
				return nil
			}
			for _, t := range todos {
				box := boxUnchecked
				text := t.Text
				if t.Completed {
					box = successStyle.Render(boxChecked)
					text = doneStyle.Render(text)
				}
				fmt.Printf("%4d %s %s\n", t.ID, box, text)
			}
			return nil
		},
	}
}

func (a *App) doneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Toggle completion for a todo by id",
		UsageText: "todo done <id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := parseID(c, "done")
			if err != nil {
				return err
			}
			if err := a.store.Toggle(ctx, id); err != nil {
				return fmt.Errorf("done: %w", err)
			}
			ok("toggled")
			return nil
		},
	}
}

func (a *App) rmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Remove a todo by id",
		UsageText: "todo rm <id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := parseID(c, "rm")
			if err != nil {
				return err
			}
			if err := a.store.Remove(ctx, id); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ok("removed")
			return nil
		},
	}
}

func parseID(c *cli.Command, verb string) (int64, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("usage: todo %s <id>", verb)
	}
	id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", verb, c.Args().Get(0))
	}
	return id, nil
}

func (a *App) authCmd() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the server token",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Save a bearer token for --addr mode",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Print("Paste your token: ")
					var token string
					if _, err := fmt.Scanln(&token); err != nil {
						return fmt.Errorf("read token: %w", err)
					}
					if err := SetToken(token, nil); err != nil {
						return fmt.Errorf("save token: %w", err)
					}
					ok("logged in")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Delete the stored token",
				Action: func(ctx context.Context, c *cli.Command) error {
					ti, _ := GetToken()
					if ti != nil && ti.Source == "env" {
						ok("token is provided by " + tokenEnvVar + " (nothing to delete)")
						return nil
					}
					if err := DeleteToken(); err != nil {
						return fmt.Errorf("logout: %w", err)
					}
					ok("logged out")
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show where the active token comes from",
				Action: func(ctx context.Context, c *cli.Command) error {
					ti, _ := GetToken()
					if ti == nil {
						fmt.Println(mutedStyle.Render("not logged in"))
						fmt.Println("Run: todo auth login")
						return nil
					}
					fmt.Printf("source: %s\n", ti.Source)
					if ti.ExpiresAt != nil {
						fmt.Printf("expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
					} else {
						fmt.Println("expires: (unknown)")
					}
					fmt.Println("env override: " + tokenEnvVar)
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "Decode the stored token locally",
				Action: func(ctx context.Context, c *cli.Command) error {
					ti, _ := GetToken()
					if ti == nil {
						return fmt.Errorf("not logged in. Run: todo auth login")
					}
					if payload, found := jwtPayload(ti.Token); found {
						fmt.Println("JWT payload:")
						fmt.Println(payload)
						return nil
					}
					fmt.Println("Opaque token (cannot introspect locally).")
					fmt.Println("source:", ti.Source)
					return nil
				},
			},
		},
	}
}

// jwtPayload decodes the middle segment of a JWT without verifying it.
func jwtPayload(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}
	dec, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}
	return string(dec), true
}
