package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepository "github.com/festy23/veterans_league/internal/auth/repository"
	"github.com/festy23/veterans_league/internal/auth/token"
	"github.com/festy23/veterans_league/internal/database/migrate"
	"github.com/festy23/veterans_league/internal/seed"
	standingsRouter "github.com/festy23/veterans_league/internal/standings/router"
)

// connectFunc opens the league database and returns its close function.
type connectFunc func() (*gorm.DB, func() error, error)

func newApp(connect connectFunc, logger *zap.SugaredLogger) *cli.App {
	// withDB opens the database for one command and closes it afterwards.
	withDB := func(action func(c *cli.Context, db *gorm.DB) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			db, closeDB, err := connect()
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer func() {
				if err := closeDB(); err != nil {
					logger.Errorw("failed to close database", "error", err)
				}
			}()
			return action(c, db)
		}
	}

	dirFlag := &cli.StringFlag{
		Name:    "dir",
		Usage:   "migrations directory",
		Value:   migrate.GetMigrationsPath(),
		EnvVars: []string{"MIGRATIONS_PATH"},
	}

	return &cli.App{
		Name:  "leaguectl",
		Usage: "veterans league administration",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "database migrations",
				Subcommands: []*cli.Command{
					{
						Name:  "up",
						Usage: "apply pending migrations",
						Flags: []cli.Flag{dirFlag},
						Action: withDB(func(c *cli.Context, db *gorm.DB) error {
							if err := migrate.Up(db, c.String("dir")); err != nil {
								return err
							}
							logger.Infow("migrations applied", "dir", c.String("dir"))
							return nil
						}),
					},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{dirFlag, &cli.IntFlag{Name: "steps", Value: 1}},
						Action: withDB(func(c *cli.Context, db *gorm.DB) error {
							if err := migrate.Down(db, c.String("dir"), c.Int("steps")); err != nil {
								return err
							}
							logger.Infow("migrations rolled back", "steps", c.Int("steps"))
							return nil
						}),
					},
					{
						Name:  "version",
						Usage: "print the applied schema version",
						Flags: []cli.Flag{dirFlag},
						Action: withDB(func(c *cli.Context, db *gorm.DB) error {
							version, dirty, err := migrate.Version(db, c.String("dir"))
							if err != nil {
								return err
							}
							_, err = fmt.Fprintf(c.App.Writer, "version %d dirty=%t\n", version, dirty)
							return err
						}),
					},
				},
			},
			{
				Name:  "seed",
				Usage: "load seasons, teams, players and admins from a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true},
				},
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					sum, err := seed.LoadFile(c.Context, db, c.String("file"), logger)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(c.App.Writer, "seeded %d seasons, %d teams, %d players, %d admins, %d punishment types\n",
						sum.Seasons, sum.Teams, sum.Players, sum.Admins, sum.PunishmentTypes)
					return err
				}),
			},
			{
				Name:  "recompute",
				Usage: "rebuild a season's standings from its results",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "season", Aliases: []string{"s"}, Required: true},
				},
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					seasonID := c.Int64("season")
					if err := standingsRouter.NewService(db, logger).Recompute(c.Context, seasonID); err != nil {
						return err
					}
					_, err := fmt.Fprintf(c.App.Writer, "recomputed standings for season %d\n", seasonID)
					return err
				}),
			},
			{
				Name:      "admin",
				Usage:     "add an administrator email",
				ArgsUsage: "<email>",
				Action: withDB(func(c *cli.Context, db *gorm.DB) error {
					email := token.NormalizeEmail(c.Args().First())
					if email == "" {
						return fmt.Errorf("email is required")
					}
					if err := authRepository.New(db, logger).AddAdmin(c.Context, email); err != nil {
						return err
					}
					_, err := fmt.Fprintf(c.App.Writer, "admin %s added\n", email)
					return err
				}),
			},
		},
	}
}
